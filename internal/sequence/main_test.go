//go:build integration
// +build integration

package sequence

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"erp-backend/internal/testutils"
)

// TestMain runs the sequence integration tests and always purges the shared containers
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("sequence tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Println("Starting sequence integration tests...")
	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}
