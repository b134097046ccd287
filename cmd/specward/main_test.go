package main

import "testing"

// main prints the final error itself, so cobra must stay quiet or every
// failure is reported twice.
func TestRootCmdSilencesCobraOutput(t *testing.T) {
	cmd := rootCmd()

	if !cmd.SilenceErrors {
		t.Error("root command must set SilenceErrors; main owns error reporting")
	}
	if !cmd.SilenceUsage {
		t.Error("root command must set SilenceUsage; errors should not dump usage")
	}
}
