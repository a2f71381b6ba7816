// Command rubrica-server serves the entity highlighting API over HTTP.
//
// By default it recognizes entities with the bundled statistical model and
// saves exported documents to a local directory. Point it at S3-compatible
// object storage with the -minio-* flags, or at an ONNX token
// classification model with -model (requires building with -tags onnx).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/tsawler/rubrica"
	"github.com/tsawler/rubrica/pipeline"
	"github.com/tsawler/rubrica/server"
	"github.com/tsawler/rubrica/store"
	"github.com/tsawler/rubrica/style"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var (
		addr     = flag.String("addr", ":8080", "listen address")
		storeDir = flag.String("store-dir", "exports", "directory for saved documents")

		minioEndpoint  = flag.String("minio-endpoint", "", "object storage endpoint; when set, saved documents go there instead of -store-dir")
		minioBucket    = flag.String("minio-bucket", "rubrica", "object storage bucket")
		minioAccessKey = flag.String("minio-access-key", "", "object storage access key")
		minioSecretKey = flag.String("minio-secret-key", "", "object storage secret key")
		minioPrefix    = flag.String("minio-prefix", "exports", "object storage key prefix")
		minioSecure    = flag.Bool("minio-secure", true, "use TLS for object storage")

		modelPath = flag.String("model", "", "path to an ONNX token classification model")
		offline   = flag.Bool("offline", false, "tokenize only, without an entity model")

		logLevel = flag.String("log-level", "info", "log level: debug, info, warn, or error")
		logJSON  = flag.Bool("log-json", false, "write logs as JSON")
	)
	flag.Parse()

	logger, err := newLogger(*logLevel, *logJSON)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	rec, err := newRecognizer(*modelPath, *offline)
	if err != nil {
		logger.Error("configuring recognizer", "err", err)
		os.Exit(1)
	}
	if c, ok := rec.(io.Closer); ok {
		defer c.Close()
	}

	eng, err := rubrica.New(rubrica.WithRecognizer(rec))
	if err != nil {
		logger.Error("configuring engine", "err", err)
		os.Exit(1)
	}

	st, err := newStore(*storeDir, *minioEndpoint, *minioBucket, *minioAccessKey, *minioSecretKey, *minioPrefix, *minioSecure)
	if err != nil {
		logger.Error("configuring store", "err", err)
		os.Exit(1)
	}

	srv := server.New(server.Config{
		Engine: eng,
		Store:  st,
		Logger: logger,
	})

	httpSrv := &http.Server{
		Addr:              *addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", *addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logger.Error("serving", "err", err)
		os.Exit(1)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func newLogger(level string, json bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if json {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

// newRecognizer picks the entity recognizer: an ONNX model when one is
// given, a tokenize-only recognizer in offline mode, and the statistical
// model otherwise. The offline recognizer still advertises the registry's
// label set so the label endpoint stays useful.
func newRecognizer(modelPath string, offline bool) (pipeline.Recognizer, error) {
	switch {
	case modelPath != "":
		return pipeline.NewONNX(modelPath)
	case offline:
		return pipeline.NewStatic(style.NewRegistry().Labels(), nil), nil
	default:
		return pipeline.NewProse(), nil
	}
}

func newStore(dir, endpoint, bucket, accessKey, secretKey, prefix string, secure bool) (store.Store, error) {
	if endpoint == "" {
		return store.NewLocal(dir)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("configuring object storage: %w", err)
	}
	return store.NewMinio(client, bucket, prefix), nil
}
