package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	zap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/finpanel/finpanel-client/internal/config"
	"github.com/finpanel/finpanel-client/internal/logging"
	"github.com/finpanel/finpanel-client/internal/repository/panelrepo"
	"github.com/finpanel/finpanel-client/internal/repository/panelrepo/proxy"
	"github.com/finpanel/finpanel-client/internal/services/panelserv"
	"github.com/finpanel/finpanel-client/internal/services/sessionserv"
	"github.com/finpanel/finpanel-client/internal/session"
	"github.com/finpanel/finpanel-client/internal/types"
	"github.com/finpanel/finpanel-client/internal/view"
)

var GitCommit string

func getLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return cfg.Build()
}

func main() {
	user := flag.String("user", "", "log in with this identifier before anything else")
	password := flag.String("password", "", "password for -user")
	logout := flag.Bool("logout", false, "clear the stored session and exit")
	search := flag.String("search", "", "run a contact search after loading the dashboard")
	timeout := flag.Uint("timeout", 0, "overall timeout in seconds")

	newDesc := flag.String("new-desc", "", "create an entry with this description")
	newAmount := flag.String("new-amount", "", "amount for the new entry")
	newDue := flag.String("new-due", "", "due date (YYYY-MM-DD) for the new entry")
	newType := flag.String("new-type", "DESPESA", "type for the new entry (RECEITA or DESPESA)")
	newCategory := flag.Int64("new-category", 0, "category id for the new entry")
	flag.Parse()

	zl, err := getLogger()
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}
	logging.SetCustomGlobalLogger(zl)

	logger := logging.New()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", logging.Error(err))
	}

	ctx := context.Background()
	if *timeout != 0 {
		t := time.Duration(*timeout) * time.Second
		nctx, cancel := context.WithTimeout(ctx, t)
		ctx = nctx
		defer cancel()
	}
	ctx = logger.GetContext(ctx)

	store := &session.FileStore{Path: cfg.Session.TokenFile}

	repo := &panelrepo.RestRepository{
		BaseURL:  cfg.API.BaseURL,
		Timeout:  cfg.API.Timeout,
		Sessions: store,
		OnUnauthorized: func() {
			logger.Warn("session expired, log in again with -user/-password")
		},
	}

	client := &proxy.CachingClient{Client: repo}

	gateway := &sessionserv.Gateway{
		API:      client,
		Sessions: store,
	}

	money, err := view.NewMoneyFormatter(cfg.View.Locale, cfg.View.Currency)
	if err != nil {
		logger.Fatal("invalid locale configuration", logging.Error(err))
	}

	renderer := &view.Renderer{
		Money:         money,
		TopCategories: cfg.Dashboard.TopCategories,
	}

	svc := &panelserv.Service{
		API:         client,
		View:        renderer,
		RecentLimit: cfg.Dashboard.RecentLimit,
		Debounce:    cfg.Search.Debounce,
		MinTermLen:  cfg.Search.MinTermLen,
	}

	if *logout {
		if err := gateway.Logout(ctx); err != nil {
			logger.Fatal("could not clear session", logging.Error(err))
		}
		return
	}

	if *user != "" {
		if err := gateway.Login(ctx, *user, *password); err != nil {
			if types.ErrAuth.Has(err) {
				logger.Fatal("login rejected, check your credentials")
			}
			logger.Fatal("login failed", logging.Error(err))
		}
	}

	if !gateway.LoggedIn() {
		logger.Fatal("no active session, log in with -user/-password")
	}

	if err := svc.LoadDashboard(ctx); err != nil {
		// No partial render: the view stays as it was.
		logger.Error("dashboard load failed", logging.Error(err))
		return
	}

	if *newDesc != "" || *newAmount != "" {
		amount, err := decimal.NewFromString(*newAmount)
		if err != nil {
			amount = decimal.Zero
		}

		input := types.CreateEntryInput{
			Description: *newDesc,
			Amount:      amount,
			DueDate:     *newDue,
			Type:        types.ParseEntryType(*newType),
			CategoryID:  *newCategory,
		}

		if err := svc.CreateEntry(ctx, input); err != nil {
			if types.ErrValidation.Has(err) {
				logger.Fatal("entry rejected", logging.Error(err))
			}
			logger.Fatal("could not create entry", logging.Error(err))
		}
	}

	if *search != "" {
		svc.Search(ctx, *search)
		// One-shot process: wait out the debounce window and the request
		// before reading the view.
		time.Sleep(cfg.Search.Debounce + 2*time.Second)
	}

	printView(renderer.View())
}

func printView(v view.DashboardView) {
	fmt.Printf("%s\n\n", view.HeaderDate(time.Now()))

	for _, c := range []view.Card{v.Cards.Balance, v.Cards.Receivable, v.Cards.Payable, v.Cards.Overdue} {
		fmt.Printf("%-20s %s\n", c.Label, c.Value)
	}

	fmt.Println()
	for _, row := range v.Table {
		line := fmt.Sprintf("%s  %-30s [%s] %s", row.DueDate, row.Description, row.Status.Label, row.Amount)
		if row.SubLabel != "" {
			line += "  (" + row.SubLabel + ")"
		}
		fmt.Println(line)
	}

	if v.SearchMode {
		fmt.Println("\nContatos:")
		for _, r := range v.SearchResults {
			fmt.Printf("  %-25s", r.Name)
			for _, b := range r.Badges {
				fmt.Printf(" [%s]", b.Label)
			}
			fmt.Println()
		}
		return
	}

	fmt.Println("\nDevedores:")
	printRanking(v.Debtors)
	fmt.Println("Credores:")
	printRanking(v.Creditors)
}

func printRanking(items []view.RankingItem) {
	for _, it := range items {
		if it.Placeholder != "" {
			fmt.Printf("  %s\n", it.Placeholder)
			continue
		}
		fmt.Printf("  %s %-25s %s\n", it.Initials, it.Name, it.Amount.Label)
	}
}
