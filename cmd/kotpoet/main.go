package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kotpoet",
		Short: "A Kotlin source generator",
	}

	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newExampleCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
