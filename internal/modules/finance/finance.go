// internal/modules/finance/finance.go

// Package finance define el módulo de capturas de GurihFinance: el
// dashboard y las vistas contables servidas por el runtime DSL, más los
// documentos de estructura y de DSL extraído.
package finance

import (
	"time"

	"docshot/internal/core/domain"
	"docshot/internal/platform/registry"
)

func init() {
	registry.Global().Register("finance", Module)
}

// accountList es el payload fijo del API de cuentas: suficiente para
// que la vista CoA renderice una tabla poblada sin backend real.
const accountList = `[
  {"id": "1000", "name": "Cash", "type": "Asset", "balance": 150000},
  {"id": "1100", "name": "Accounts Receivable", "type": "Asset", "balance": 42000},
  {"id": "2000", "name": "Accounts Payable", "type": "Liability", "balance": 31000},
  {"id": "3000", "name": "Owner Equity", "type": "Equity", "balance": 120000},
  {"id": "4000", "name": "Sales Revenue", "type": "Revenue", "balance": 87000}
]`

const journalList = `[
  {"id": "J-001", "date": "2024-01-15", "description": "Opening balance", "status": "posted"},
  {"id": "J-002", "date": "2024-01-31", "description": "January sales", "status": "posted"},
  {"id": "J-003", "date": "2024-02-01", "description": "Rent payment", "status": "draft"}
]`

// Module construye el spec del módulo finance.
func Module() (domain.ModuleSpec, error) {
	return domain.ModuleSpec{
		Name:        "finance",
		Description: "GurihFinance: dashboard, CoA, journals y reportes",
		BaseURL:     "http://localhost:3000",
		Server: &domain.ServerSpec{
			Command:    "./target/debug/gurih_cli",
			Args:       []string{"run", "gurih-finance/gurih.kdl", "--port", "3000", "--no-auth"},
			ReadyDelay: domain.DefaultReadyDelay,
		},
		Mocks: []domain.MockRule{
			{Pattern: "**/api/Account", Body: []byte(accountList)},
			{Pattern: "**/api/JournalEntry", Body: []byte(journalList)},
		},
		Session: domain.DefaultFakeSession(),
		Tasks: []domain.CaptureTask{
			{
				Name:       "finance-dashboard",
				OutputFile: "finance-dashboard.png",
				Mode:       domain.ModeLivePage,
				Live: &domain.LivePage{
					Path:              "/#/",
					ReadinessSelector: "header",
					SettleDelay:       3 * time.Second,
				},
			},
			{
				Name:       "finance-coa-list",
				OutputFile: "finance-coa-list.png",
				Mode:       domain.ModeLivePage,
				Live: &domain.LivePage{
					Path:              "/#/finance/coa",
					ReadinessSelector: "table",
				},
			},
			{
				Name:       "finance-journal-list",
				OutputFile: "finance-journal-list.png",
				Mode:       domain.ModeLivePage,
				Live: &domain.LivePage{
					Path:              "/#/finance/journals",
					ReadinessSelector: "table",
				},
			},
			{
				Name:       "finance-report-trial-balance",
				OutputFile: "finance-report-trial-balance.png",
				Mode:       domain.ModeLivePage,
				Live: &domain.LivePage{
					Path: "/#/finance/reports/trial-balance",
				},
			},
			{
				Name:       "finance-project-structure",
				OutputFile: "finance-project-structure.png",
				Mode:       domain.ModeTextDocument,
				Doc: &domain.TextDocument{
					Title:   "Project Structure",
					TreeDir: "gurih-finance",
				},
			},
			{
				Name:       "finance-dsl-example",
				OutputFile: "finance-dsl-example.png",
				Mode:       domain.ModeTextDocument,
				Doc: &domain.TextDocument{
					Title:      "gurih-finance/journal.kdl",
					SourceFile: "gurih-finance/journal.kdl",
					Anchor:     `workflow "JournalWorkflow"`,
				},
			},
			{
				Name:       "finance-integration",
				OutputFile: "finance-integration.png",
				Mode:       domain.ModeTextDocument,
				Doc: &domain.TextDocument{
					Title:      "gurih-finance/integration.kdl",
					SourceFile: "gurih-finance/integration.kdl",
				},
			},
		},
	}, nil
}
