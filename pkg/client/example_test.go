package client_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/attager/a2a-threat-center/pkg/client"
)

// Example demonstrates basic usage of the client
func Example() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:5000",
	})

	ctx := context.Background()

	overview, err := c.Overview(ctx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d agents, %d high threats\n", overview.AgentCount, overview.HighThreats)
}

// ExamplePacketService_List demonstrates listing packets with filters
func ExamplePacketService_List() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:5000",
	})

	page, err := c.Packets().List(context.Background(), &client.PacketListOptions{
		Severity: "high",
		Layer:    "Layer 3",
		PageSize: 20,
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range page.Packets {
		fmt.Printf("%s -> %s: %s\n", p.SourceAgent, p.TargetAgent, p.ThreatType)
	}
}

// ExampleClient_Stream demonstrates tailing the live alert stream
func ExampleClient_Stream() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:5000",
	})

	errEnough := errors.New("enough")

	seen := 0
	err := c.Stream(context.Background(), func(a client.Alert) error {
		fmt.Printf("[%s] %s\n", a.Severity, a.Description)
		seen++
		if seen == 10 {
			return errEnough
		}
		return nil
	})
	if err != nil && !errors.Is(err, errEnough) {
		log.Fatal(err)
	}
}
