// Command runsmoke submits one snippet through the configured sandbox
// provider and prints the classified outcome. Useful to verify a deployment
// without going through the HTTP surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"runbox-api/internal/config"
	"runbox-api/internal/logic"
	"runbox-api/internal/svc"
	"runbox-api/internal/types"
	"runbox-api/pkg/confkit"
	"runbox-api/pkg/param"
)

var (
	configFile = flag.String("f", confkit.MustProjectPath("etc/runbox.yaml"), "the config file")
	language   = flag.String("lang", "python3", "language id to run")
	code       = flag.String("code", `print("hello from runbox")`, "source code to run")
	stdin      = flag.String("stdin", "", "standard input for the run")
	provider   = flag.String("provider", "", "sandbox provider name (default provider when empty)")
)

func main() {
	flag.Parse()

	cfg := config.MustLoad(*configFile)
	ctx := svc.NewServiceContext(*cfg)

	l := logic.NewRunLogic(context.Background(), ctx)
	resp, err := l.Run(&types.RunRequest{
		Feature:  param.FeatureInteractive,
		Language: *language,
		Code:     *code,
		Stdin:    *stdin,
		Provider: *provider,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("digest:   %s\n", resp.Digest)
	fmt.Printf("error:    %d\n", resp.Error)
	fmt.Printf("result:   %d\n", resp.Result)
	if resp.Category != "" {
		fmt.Printf("category: %s\n", resp.Category)
	}
	fmt.Println("--- output ---")
	fmt.Println(resp.Text)
}
