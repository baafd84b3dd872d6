package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// runInteractive prompts for an operation and its inputs, then runs it.
func runInteractive(ctx context.Context, a *app) error {
	items := make([]string, len(commands))
	for i, cmd := range commands {
		items[i] = fmt.Sprintf("%s: %s", cmd.name, cmd.description)
	}

	selector := promptui.Select{
		Label: "Select an operation",
		Items: items,
	}

	selIdx, _, err := selector.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return errUserCanceled
		}

		return fmt.Errorf("operation prompt failed: %w", err)
	}

	cmd := commands[selIdx]

	args, err := promptInputs(cmd.inputs)
	if err != nil {
		return err
	}

	return cmd.run(ctx, a, args)
}

// promptInputs asks for every input and renders the answers as "--name=value" arguments.
func promptInputs(inputs []input) ([]string, error) {
	args := make([]string, 0, len(inputs))
	for _, in := range inputs {
		prompt := promptui.Prompt{
			Label:    in.label,
			Validate: requireValue(in),
		}

		value, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil, errUserCanceled
			}

			return nil, fmt.Errorf("%s prompt failed: %w", in.flag, err)
		}

		if value = strings.TrimSpace(value); value != "" {
			args = append(args, fmt.Sprintf("--%s=%s", in.flag, value))
		}
	}

	return args, nil
}

func requireValue(in input) promptui.ValidateFunc {
	return func(value string) error {
		if !in.optional && strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", strings.ToLower(in.label))
		}

		return nil
	}
}
