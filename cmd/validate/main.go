package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/modernzork/adventure-engine/internal/loader"
)

var validFilename = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <adventure.json|adventure.yaml>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	if err := validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Adventure file is valid!")
}

func validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	ext := strings.ToLower(filepath.Ext(baseName))
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("adventure file must have a .json or .yaml extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ext)
	if !validFilename.MatchString(nameWithoutExt) {
		return fmt.Errorf("adventure filename %q must be lowercase snake_case (e.g. my_adventure.yaml)", baseName)
	}

	adv, err := loader.LoadFile(filename)
	if err != nil {
		return err
	}

	fmt.Printf("  id:        %s\n", adv.ID)
	fmt.Printf("  title:     %s\n", adv.Title)
	fmt.Printf("  author:    %s\n", adv.Author)
	fmt.Printf("  locations: %d\n", len(adv.Locations))
	fmt.Printf("  items:     %d\n", len(adv.Items))
	return nil
}
