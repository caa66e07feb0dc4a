package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(f func()) string {
	var buf bytes.Buffer
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan bool)
	go func() {
		_, _ = io.Copy(&buf, r)
		done <- true
	}()

	f()
	_ = w.Close()
	os.Stdout = oldStdout
	<-done

	return buf.String()
}

func callRun() (int, string) {
	exitCode := 0
	oldExit := exit
	defer func() { exit = oldExit }()
	exit = func(code int) {
		exitCode = code
		panic("exit")
	}

	output := captureOutput(func() {
		defer func() {
			if r := recover(); r != nil && r != "exit" {
				panic(r)
			}
		}()
		run()
	})

	return exitCode, output
}

func TestRun(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	tests := []struct {
		name           string
		args           []string
		expectedExit   int
		expectedOutput string
	}{
		{
			name:           "no arguments",
			args:           []string{"inkpress"},
			expectedExit:   1,
			expectedOutput: "Usage: inkpress <command>",
		},
		{
			name:           "help command",
			args:           []string{"inkpress", "help"},
			expectedExit:   0,
			expectedOutput: "Usage: inkpress <command>",
		},
		{
			name:           "version command",
			args:           []string{"inkpress", "version"},
			expectedExit:   0,
			expectedOutput: "inkpress version " + cliVersion,
		},
		{
			name:           "unknown command",
			args:           []string{"inkpress", "bogus"},
			expectedExit:   1,
			expectedOutput: "Unknown command: bogus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			exitCode, output := callRun()

			assert.Contains(t, output, tt.expectedOutput)
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}

func TestPrintHelp(t *testing.T) {
	output := captureOutput(printHelp)

	assert.Contains(t, output, "Usage: inkpress")
	assert.Contains(t, output, "help")
	assert.Contains(t, output, "version")
	assert.Contains(t, output, "serve")
}
