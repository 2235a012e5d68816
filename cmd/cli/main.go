package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"syscall"

	"github.com/andeanbank/corebank/infra/initializer"
	"github.com/andeanbank/corebank/pkg/config"
	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/service/directory"
	ledgersvc "github.com/andeanbank/corebank/pkg/service/ledger"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/term"
)

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  open <full_name> <email>          open an account (prompts for password)")
	fmt.Println("  deposit <account_id> <amount>     deposit funds")
	fmt.Println("  withdraw <account_id> <amount>    withdraw funds")
	fmt.Println("  balance <account_id>              show balance")
	fmt.Println("  movements <account_id>            list recent movements")
	fmt.Println("  audit <account_id>                replay the ledger against the stored balance")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	ledgerSvc := ledgersvc.New(deps)
	directorySvc := directory.New(deps)

	switch os.Args[1] {
	case "open":
		if len(os.Args) < 4 {
			fmt.Println("Usage: open <full_name> <email>")
			return
		}
		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			color.Red("Could not read password: %v", err)
			os.Exit(1)
		}
		acct, err := directorySvc.Open(ctx, directory.OpenParams{
			FullName: os.Args[2],
			Email:    os.Args[3],
			Password: string(password),
			Role:     ledger.RoleUser,
		})
		if err != nil {
			color.Red("Error opening account: %v", err)
			os.Exit(1)
		}
		color.Green("Account opened: ID=%s Number=%s", acct.ID, acct.Number)
	case "deposit":
		applyMovement(ctx, ledgerSvc, ledger.KindDeposit)
	case "withdraw":
		applyMovement(ctx, ledgerSvc, ledger.KindWithdrawal)
	case "balance":
		id := mustAccountID(2)
		balance, err := ledgerSvc.GetBalance(ctx, id)
		if err != nil {
			color.Red("Error fetching balance: %v", err)
			os.Exit(1)
		}
		fmt.Printf("Account %s balance: %s\n", id, balance)
	case "movements":
		id := mustAccountID(2)
		movements, err := ledgerSvc.ListMovements(ctx, id)
		if err != nil {
			color.Red("Error listing movements: %v", err)
			os.Exit(1)
		}
		for _, m := range movements {
			fmt.Printf("%s  %-12s %12s  %s\n",
				m.CreatedAt.Format("2006-01-02 15:04"), m.Kind, m.Signed(), m.Description)
		}
	case "audit":
		id := mustAccountID(2)
		consistent, err := ledgerSvc.Audit(ctx, id)
		if err != nil {
			color.Red("Error auditing account: %v", err)
			os.Exit(1)
		}
		if consistent {
			color.Green("Ledger is consistent with the stored balance")
		} else {
			color.Red("Ledger does NOT match the stored balance")
			os.Exit(1)
		}
	default:
		fmt.Println("Unknown command:", os.Args[1])
		usage()
	}
}

func applyMovement(ctx context.Context, svc *ledgersvc.Service, kind ledger.Kind) {
	if len(os.Args) < 4 {
		fmt.Printf("Usage: %s <account_id> <amount>\n", os.Args[1])
		return
	}
	id := mustAccountID(2)
	amount, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil {
		color.Red("Invalid amount: %v", err)
		os.Exit(1)
	}
	mv, err := svc.ApplyMovement(ctx, id, kind, amount, fmt.Sprintf("CLI %s", os.Args[1]))
	if err != nil {
		color.Red("Error applying movement: %v", err)
		os.Exit(1)
	}
	color.Green("%s of %s applied. New balance: %s", mv.Kind, mv.Amount, mv.Balance)
}

func mustAccountID(arg int) uuid.UUID {
	if len(os.Args) <= arg {
		usage()
		os.Exit(1)
	}
	id, err := uuid.Parse(os.Args[arg])
	if err != nil {
		color.Red("Invalid account id: %v", err)
		os.Exit(1)
	}
	return id
}
