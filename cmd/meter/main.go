package main

import (
	"context"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/pako-23/throughput-meter/internal/meter"
	"github.com/pako-23/throughput-meter/internal/monitor"
	"github.com/pako-23/throughput-meter/internal/rate"
	"github.com/pako-23/throughput-meter/internal/receiver"
	"github.com/pako-23/throughput-meter/internal/report"
)

func main() {
	var (
		listenAddress = flag.String("listen", receiver.DefaultAddress, "OTLP gRPC listen address")
		httpAddress   = flag.String("http", ":8080", "HTTP listen address for the rates endpoint")
		window        = flag.Duration("window", meter.DefaultWindow, "trailing window of the rate estimate")
		interval      = flag.Duration("interval", monitor.DefaultInterval, "reporting interval")
		decay         = flag.Bool("decay", false, "use the exponential-decay estimate instead of the exact sliding window")
	)
	flag.Parse()

	algorithm := rate.SlidingWindow
	if *decay {
		algorithm = rate.ExponentialDecay
	}

	meters, err := meter.NewMeters(
		meter.WithWindow(*window),
		meter.WithAlgorithm(algorithm))
	if err != nil {
		log.Fatalf("failed with error: %v", err)
	}

	var wg sync.WaitGroup

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ch := make(chan *receiver.Event)
	recv := receiver.NewOTLPReceiver(
		receiver.WithChannel(ch),
		receiver.WithAddress(*listenAddress))

	snapshot := report.NewSnapshot()
	httpErr := make(chan error, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, snapshot.State())
	})
	server := &http.Server{
		Addr:    *httpAddress,
		Handler: mux,
	}

	_, recvErr := recv.Start()

	wg.Add(2)
	go func() {
		defer wg.Done()
		mon := monitor.NewMonitor(
			monitor.WithMeters(meters),
			monitor.WithInterval(*interval),
			monitor.WithReporter(snapshot))
		mon.Run(ctx, ch)
	}()
	go func() {
		defer wg.Done()
		httpErr <- server.ListenAndServe()
	}()

	select {
	case err := <-recvErr:
		if err != nil {
			log.Fatalf("failed with error: %v", err)
		}

	case err := <-httpErr:
		if err != nil {
			log.Fatalf("failed with error: %v", err)
		}

	case <-ctx.Done():
		recv.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}

	wg.Wait()
}
