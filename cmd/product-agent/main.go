package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"product-agent/internal/agent"
	"product-agent/internal/config"
)

func main() {
	imageList := flag.String("images", "", "comma-separated image paths")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	description := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if description == "" && *imageList == "" {
		fmt.Fprintln(os.Stderr, "usage: product-agent [-images a.jpg,b.png] <description>")
		os.Exit(2)
	}

	var images []string
	for _, p := range strings.Split(*imageList, ",") {
		if p = strings.TrimSpace(p); p != "" {
			images = append(images, p)
		}
	}

	a := agent.New(cfg, log)
	res := a.Analyze(context.Background(), images, description)

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("encode result")
	}
	fmt.Println(string(out))

	if res.Status != agent.StatusSuccess {
		os.Exit(1)
	}
}
