package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/glasscast/glasscast/internal/logger"
	"github.com/glasscast/glasscast/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	logger.Init()

	// Create and start web server
	webServer := server.NewServer(*port)

	fmt.Printf("Glasscast Web Server\n")
	fmt.Printf("Visit http://localhost:%d to start rendering\n", *port)

	if err := webServer.Start(); err != nil {
		logger.Log.Fatal("web server failed", zap.Error(err))
	}
}
