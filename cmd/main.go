package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AndyF-42/BattleshipOnline/api"
	"github.com/AndyF-42/BattleshipOnline/db"
	"github.com/AndyF-42/BattleshipOnline/internal/console"
	mc "github.com/AndyF-42/BattleshipOnline/models/connection"
	"github.com/joho/godotenv"
)

const (
	RoleHost = "host"
	RoleJoin = "join"
)

func main() {
	if os.Getenv("STAGE") != api.StageProd {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file loaded:", err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = api.StageDev
	}
	if stage != api.StageDev && stage != api.StageProd {
		panic("stage must be either dev or prod")
	}

	role := os.Getenv("ROLE")
	if role != RoleHost && role != RoleJoin {
		panic("role must be either host or join")
	}

	transport := os.Getenv("TRANSPORT")
	if transport == "" {
		transport = api.TransportWs
	}

	var readTimeout time.Duration
	if v := os.Getenv("READ_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		readTimeout = d
	}

	opts := []api.Option{
		api.WithStage(stage),
		api.WithTransport(transport),
		api.WithReadTimeout(readTimeout),
	}
	if port := os.Getenv("PORT"); port != "" {
		opts = append(opts, api.WithPort(port))
	}
	if psqlUrl := os.Getenv("PSQL_URL"); psqlUrl != "" {
		opts = append(opts, api.WithDb(db.MustConnectToDb(psqlUrl, db.DefaultMigrationDir)))
	}
	server := api.NewServer(opts...)
	if server.Db != nil {
		defer server.Db.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ch, peerAddr, err := connect(ctx, server, role)
	if err != nil {
		log.Fatalln(err)
	}

	// a blocked receive only returns once the channel is closed
	go func() {
		<-ctx.Done()
		ch.Close()
	}()

	var coordinatorOpts []api.CoordinatorOption
	if server.DbManager.Analytics.Enabled() {
		peerIp, err := api.PeerInet(peerAddr)
		if err != nil {
			log.Println("analytics disabled:", err)
		} else {
			coordinatorOpts = append(coordinatorOpts, api.WithAnalytics(server.DbManager.Analytics, peerIp))
		}
	}

	frontend := console.New(os.Stdin, os.Stdout, os.Getenv("BOARD_FILE"))
	coordinator := api.NewTurnCoordinator(ch, frontend, os.Getenv("PLAYER_NAME"), role == RoleHost, coordinatorOpts...)

	if err := coordinator.Run(); err != nil {
		if ctx.Err() != nil {
			log.Println("duel cancelled")
			return
		}
		log.Fatalln("duel ended:", err)
	}
}

// connect hosts or joins depending on role. The host always moves first.
func connect(ctx context.Context, server *api.Server, role string) (mc.DuelChannel, net.Addr, error) {
	if role == RoleJoin {
		return server.Join(ctx, os.Getenv("HOST_NAME"))
	}

	defer server.Close()
	if ipnet, err := api.LocalIPNet(); err == nil {
		log.Println("waiting for an opponent on", ipnet.IP.String())
	}
	return server.Host(ctx)
}
