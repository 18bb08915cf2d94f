package cli

import (
	"io"
	"reflect"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestRegisterBooleanFlagParsesValues(t *testing.T) {
	testCases := []struct {
		name        string
		arguments   []string
		expected    bool
		expectError bool
	}{
		{name: "defaults_to_false", arguments: []string{}, expected: false},
		{name: "sets_true_without_value", arguments: []string{"--save"}, expected: true},
		{name: "sets_false_with_equals", arguments: []string{"--save=false"}, expected: false},
		{name: "sets_true_with_on", arguments: []string{"--save=on"}, expected: true},
		{name: "rejects_invalid_text", arguments: []string{"--save=maybe"}, expectError: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			var flagValue bool
			flagSet := pflag.NewFlagSet("save-flag", pflag.ContinueOnError)
			flagSet.SetOutput(io.Discard)
			registerBooleanFlag(flagSet, &flagValue, saveFlagName, false, saveFlagDescription)
			parseErr := flagSet.Parse(testCase.arguments)
			if testCase.expectError {
				if parseErr == nil {
					t.Fatalf("expected error for arguments %v", testCase.arguments)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("unexpected parse error: %v", parseErr)
			}
			if flagValue != testCase.expected {
				t.Fatalf("expected value %t, got %t", testCase.expected, flagValue)
			}
		})
	}
}

func TestNormalizeBooleanFlagArguments(t *testing.T) {
	command := &cobra.Command{Use: "list"}
	var save bool
	var outputDirectory string
	registerBooleanFlag(command.Flags(), &save, saveFlagName, false, saveFlagDescription)
	command.Flags().StringVar(&outputDirectory, outputDirFlagName, "", outputDirFlagDescription)

	testCases := []struct {
		name      string
		arguments []string
		expected  []string
	}{
		{
			name:      "joins_literal_value",
			arguments: []string{"--save", "no", "proj"},
			expected:  []string{"--save=no", "proj"},
		},
		{
			name:      "keeps_path_argument",
			arguments: []string{"--save", "proj"},
			expected:  []string{"--save", "proj"},
		},
		{
			name:      "ignores_non_boolean_flags",
			arguments: []string{"--output-dir", "yes"},
			expected:  []string{"--output-dir", "yes"},
		},
		{
			name:      "stops_at_double_dash",
			arguments: []string{"--", "--save", "no"},
			expected:  []string{"--", "--save", "no"},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			actual := normalizeBooleanFlagArguments(command, testCase.arguments)
			if !reflect.DeepEqual(actual, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, actual)
			}
		})
	}
}
