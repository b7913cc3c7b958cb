package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/kotpoet/format"
	"github.com/dhamidi/kotpoet/kotlin"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print a generated sample file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := exampleFile()
			if err != nil {
				return err
			}
			return format.NewFileEncoder(cmd.OutOrStdout()).Encode(file)
		},
	}
}

func exampleFile() (*kotlin.FileSpec, error) {
	listOfString := kotlin.Parameterized(kotlin.NewClassName("java.util", "List"), kotlin.StringClass)

	toppings, err := kotlin.NewPropertySpecBuilder("toppings", listOfString).
		AddModifiers(kotlin.ModifierPrivate).
		Build()
	if err != nil {
		return nil, err
	}

	ctor, err := kotlin.NewConstructorBuilder().
		AddModifiers(kotlin.ModifierPublic).
		AddParameter(kotlin.Parameter("toppings", listOfString)).
		AddStatement("this.toppings = %N", "toppings").
		Build()
	if err != nil {
		return nil, err
	}

	toString, err := kotlin.NewFunctionSpecBuilder("toString").
		AddAnnotation(kotlin.Annotation(kotlin.NewClassName("java.lang", "Override"))).
		AddModifiers(kotlin.ModifierPublic, kotlin.ModifierFinal).
		Returns(kotlin.StringClass).
		AddStatement("return %S", "taco").
		Build()
	if err != nil {
		return nil, err
	}

	taco, err := kotlin.NewClassBuilder("Taco").
		AddModifiers(kotlin.ModifierPublic).
		AddProperty(toppings).
		AddFunction(ctor).
		AddFunction(toString).
		Build()
	if err != nil {
		return nil, err
	}

	file, err := kotlin.NewFileSpec("com.squareup.tacos", taco)
	if err != nil {
		return nil, err
	}
	return &file, nil
}
