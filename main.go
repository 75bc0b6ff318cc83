package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/session"
	"golang.org/x/sync/errgroup"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	conf, err := config.Load()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	sessions := session.NewManager(conf.Timeouts)
	hub := network.NewHub(sessions)
	servers := []network.Network{network.NewTcpServer(conf.TcpAddr, hub)}
	if conf.WsAddr != "" {
		servers = append(servers, network.NewWebsocketServer(conf.WsAddr, hub))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	group, ctx := errgroup.WithContext(ctx)
	for _, server := range servers {
		server := server
		group.Go(server.Serve)
	}
	group.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down\n")
		sessions.Close()
		for _, server := range servers {
			if err := server.Close(); err != nil {
				log.Error(err)
			}
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		log.Error(err)
	}
}
