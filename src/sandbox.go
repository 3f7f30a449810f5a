package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/emanuelduss/llmnr/src/llmnr"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <hostname>", os.Args[0])
	}

	r, err := llmnr.New(
		llmnr.UseLogger(logging.DebugLogger),
	)
	if err != nil {
		log.Fatal(err)
	}

	responses, err := r.Resolve(context.Background(), os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	if len(responses) == 0 {
		fmt.Println("no response")
		return
	}

	for _, res := range responses {
		fmt.Printf("%s\t%s\n", res.Addr, res.Hostname)
	}
}
