package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"coursecraft/studio/config"
	"coursecraft/studio/internal/synthesis"
	"coursecraft/studio/internal/worker"
	"coursecraft/studio/session"
	"coursecraft/studio/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.InitLogger(cfg.LogLevel)

	st := store.New()
	st.SetLogger(config.Log)
	seedDemoData(st)

	dispatcher := worker.NewDispatcher(cfg.WorkerCount, cfg.JobQueueSize, config.Log)
	dispatcher.Run()

	synth := synthesis.NewClient(cfg.SynthesisDelay, config.Log)
	sess := session.New(st, dispatcher, synth, cfg, config.Log)

	shell := newShell(st, sess, dispatcher, cfg)

	// Ctrl-C anywhere tears the shell down the same way "exit" does.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		shell.close()
	}()

	shell.run()

	sess.Close()
	dispatcher.Stop()
	config.Log.Info("Studio shut down gracefully")
}
