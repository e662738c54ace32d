package receiver

import (
	"net"

	coltracepb "go.opentelemetry.io/proto/otlp/collector/trace/v1"
	"google.golang.org/grpc"
	_ "google.golang.org/grpc/encoding/gzip"
)

const DefaultAddress = ":4317"

// Event is one metered occurrence extracted from an incoming span. Magnitude
// is the transferred byte count when the span reports one, 1 otherwise.
type Event struct {
	ServiceName string
	Magnitude   float64
}

type OTLPReceiver struct {
	server  *grpc.Server
	ch      chan<- *Event
	address string
}

type server struct {
	coltracepb.UnimplementedTraceServiceServer
	ch chan<- *Event
}

type Option func(*OTLPReceiver)

func NewOTLPReceiver(options ...Option) *OTLPReceiver {
	receiver := &OTLPReceiver{
		server:  grpc.NewServer(),
		address: DefaultAddress,
	}

	for _, option := range options {
		option(receiver)
	}

	coltracepb.RegisterTraceServiceServer(receiver.server, &server{ch: receiver.ch})
	return receiver
}

func WithChannel(ch chan<- *Event) Option {
	return func(receiver *OTLPReceiver) {
		receiver.ch = ch
	}
}

func WithAddress(address string) Option {
	return func(receiver *OTLPReceiver) {
		receiver.address = address
	}
}

func (o *OTLPReceiver) Start() (net.Listener, <-chan error) {
	ch := make(chan error, 1)

	lis, err := net.Listen("tcp", o.address)
	if err != nil {
		ch <- err

		return nil, ch
	}

	go func() {
		ch <- o.server.Serve(lis)
	}()

	return lis, ch
}

func (o *OTLPReceiver) Stop() {
	o.server.Stop()
}
