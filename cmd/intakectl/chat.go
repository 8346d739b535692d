package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"university-assistant/internal/intake"
	"university-assistant/internal/intake/heuristic"
	"university-assistant/internal/intake/repository"
	memoryRepo "university-assistant/internal/intake/repository/memory"
	noopRepo "university-assistant/internal/intake/repository/noop"
	sqliteRepo "university-assistant/internal/intake/repository/sqlite"
	"university-assistant/internal/intake/usecase"
	"university-assistant/internal/router"
	"university-assistant/pkg/log"
)

const defaultCollection = "student_queries"

type chatOptions struct {
	dbPath     string
	collection string
	verbose    bool
}

func newChatCmd() *cobra.Command {
	opts := chatOptions{}
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Run an intake conversation on stdin",
		Long:  "Reads one message per line and prints the assistant's reply. Keyword routing only; end with EOF.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "SQLite file to store finished records in")
	cmd.Flags().StringVar(&opts.collection, "collection", defaultCollection, "table the finished record is written to")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log use case activity to stderr")
	return cmd
}

func runChat(ctx context.Context, in io.Reader, out io.Writer, opts chatOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	l := log.NewNop()
	if opts.verbose {
		l = log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})
	}

	var records repository.RecordRepository = noopRepo.New(l)
	if opts.dbPath != "" {
		db, err := sqliteRepo.Open(opts.dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		records = sqliteRepo.New(db, l)
	}

	uc := usecase.New(l, memoryRepo.New(l), records, nil, router.Disabled{}, opts.collection)

	turn := func(sessionID, msg string) (string, error) {
		res, err := uc.Handle(ctx, intake.HandleInput{SessionID: sessionID, Message: msg})
		if err != nil {
			return "", err
		}
		fmt.Fprintf(out, "iMu> %s\n", res.Reply)
		return res.SessionID, nil
	}

	sessionID, err := turn("", heuristic.StartSentinel)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		msg := strings.TrimSpace(scanner.Text())
		if msg == "" {
			continue
		}
		if _, err := turn(sessionID, msg); err != nil {
			return err
		}
	}
	return scanner.Err()
}
