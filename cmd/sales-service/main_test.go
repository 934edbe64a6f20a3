package main

import (
	"os"
	"os/exec"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestSetupLogger(t *testing.T) {
	setupLogger()

	if log.GetLevel() != log.InfoLevel {
		t.Fatalf("unexpected log level: %s", log.GetLevel())
	}

	formatter, ok := log.StandardLogger().Formatter.(*log.TextFormatter)
	if !ok {
		t.Fatalf("unexpected formatter type: %T", log.StandardLogger().Formatter)
	}
	if !formatter.FullTimestamp {
		t.Fatal("expected FullTimestamp to be enabled")
	}
}

func TestMainInvalidStorageDriverExits(t *testing.T) {
	if os.Getenv("SERVICE_TEST_EXIT") == "1" {
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMainInvalidStorageDriverExits")
	cmd.Env = append(os.Environ(),
		"SERVICE_TEST_EXIT=1",
		"SALES_STORAGE_DRIVER=tarantool",
	)
	err := cmd.Run()
	if err == nil {
		t.Fatal("expected subprocess to exit with error")
	}
	if exitErr, ok := err.(*exec.ExitError); !ok || exitErr.ExitCode() == 0 {
		t.Fatalf("expected non-zero exit code, got %v", err)
	}
}
