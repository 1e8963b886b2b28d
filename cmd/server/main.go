package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"google.golang.org/grpc"

	"forseti/api/grpcserver"
	pb "forseti/api/marketpb"
	"forseti/domain/market"
	"forseti/infra/kafka"
	"forseti/infra/outbox"
	"forseti/infra/sequence"
	entrywal "forseti/infra/wal/entry"
	"forseti/jobs/broadcaster"
	"forseti/service"
	"forseti/snapshot"
	"forseti/token"
)

func main() {
	// ---------------- Journal ----------------

	journal, err := entrywal.Open(entrywal.Config{
		Dir:         "./journal",
		SegmentSize: 2 * 1024 * 1024,
	})
	if err != nil {
		log.Fatalf("journal init failed: %v", err)
	}

	// ---------------- Outbox ----------------

	ob, err := outbox.Open("./outbox")
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer ob.Close()

	// ---------------- Sequencer ----------------

	seqGen := sequence.New(0)

	// ---------------- Ledgers ----------------

	state := market.NewState()

	snapSeq, err := snapshot.Load("./snapshots", state)
	if err != nil {
		log.Fatalf("snapshot load failed: %v", err)
	}

	// ---------------- JOURNAL REPLAY ----------------

	// Replay runs against sink tokens: the journaled operations settled
	// their transfers when they first executed.
	replayMkt := market.New(state, market.DefaultConfig(), token.Sink{}, token.Sink{})
	if err := service.ReplayJournal("./journal", replayMkt, seqGen, snapSeq); err != nil {
		log.Fatalf("journal replay failed: %v", err)
	}

	// ---------------- Tokens ----------------

	// Demo wiring: in-memory token ledgers seeded with a faucet balance.
	// A deployment swaps these for the real asset adapters.
	quote := token.NewLedger()
	base := token.NewLedger()
	for user := uint64(1); user <= 16; user++ {
		quote.Mint(user, 1_000_000)
		base.Mint(user, 1_000_000)
	}

	mkt := market.New(state, market.DefaultConfig(), quote, base)

	// ---------------- Service ----------------

	feed := kafka.NewProducer([]string{"localhost:9092"}, "forseti.fills")
	defer feed.Close()

	svc := service.NewMarketService(mkt, seqGen, journal, ob, feed)

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.StartSnapshotJob("./snapshots", 30*time.Second)

	bc, err := broadcaster.New(ob, []string{"localhost:9092"}, "forseti.events", 250*time.Millisecond)
	if err != nil {
		log.Printf("[main] broadcaster disabled: %v", err)
	} else {
		bc.Start(ctx)
		defer bc.Close()
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", ":50051")
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer(grpc.ForceServerCodec(pb.Codec{}))
	pb.RegisterMarketServiceServer(
		grpcSrv,
		grpcserver.NewServer(svc, seqGen),
	)

	fmt.Println("🚀 Forseti market running on :50051")

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
