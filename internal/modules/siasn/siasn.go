// internal/modules/siasn/siasn.go

// Package siasn define el módulo de capturas de GurihSIASN: vistas de
// kepegawaian y cuti, más los documentos de estructura y workflow.
package siasn

import (
	"time"

	"docshot/internal/core/domain"
	"docshot/internal/platform/registry"
)

func init() {
	registry.Global().Register("siasn", Module)
}

const pegawaiList = `[
  {"nip": "199001012015031001", "nama": "Budi Santoso", "jabatan": "Analis Kepegawaian", "status": "Aktif"},
  {"nip": "198505152010122002", "nama": "Siti Rahayu", "jabatan": "Kepala Sub Bagian", "status": "Aktif"},
  {"nip": "199203202018011003", "nama": "Andi Wijaya", "jabatan": "Staf Administrasi", "status": "Cuti"}
]`

const cutiList = `[
  {"id": "C-101", "nip": "199203202018011003", "jenis": "Cuti Tahunan", "status": "Disetujui"},
  {"id": "C-102", "nip": "199001012015031001", "jenis": "Cuti Sakit", "status": "Diajukan"}
]`

// Module construye el spec del módulo siasn.
func Module() (domain.ModuleSpec, error) {
	return domain.ModuleSpec{
		Name:        "siasn",
		Description: "GurihSIASN: kepegawaian, cuti y workflow de estados",
		BaseURL:     "http://localhost:3000",
		Server: &domain.ServerSpec{
			Command:    "./target/debug/gurih_cli",
			Args:       []string{"run", "gurih-siasn/app.kdl", "--port", "3000", "--no-auth"},
			ReadyDelay: domain.DefaultReadyDelay,
		},
		Mocks: []domain.MockRule{
			{Pattern: "**/api/Pegawai", Body: []byte(pegawaiList)},
			{Pattern: "**/api/Cuti", Body: []byte(cutiList)},
		},
		Session: domain.DefaultFakeSession(),
		Tasks: []domain.CaptureTask{
			{
				Name:       "siasn-dashboard",
				OutputFile: "siasn-dashboard.png",
				Mode:       domain.ModeLivePage,
				Live: &domain.LivePage{
					Path:              "/#/",
					ReadinessSelector: "header",
					SettleDelay:       3 * time.Second,
				},
			},
			{
				Name:       "siasn-pegawai-list",
				OutputFile: "siasn-pegawai-list.png",
				Mode:       domain.ModeLivePage,
				Live: &domain.LivePage{
					Path:              "/#/kepegawaian/pegawai",
					ReadinessSelector: "table",
				},
			},
			{
				Name:       "siasn-cuti-list",
				OutputFile: "siasn-cuti-list.png",
				Mode:       domain.ModeLivePage,
				Live: &domain.LivePage{
					Path:              "/#/cuti/pengajuan",
					ReadinessSelector: "table",
				},
			},
			{
				Name:       "siasn-project-structure",
				OutputFile: "siasn-project-structure.png",
				Mode:       domain.ModeTextDocument,
				Doc: &domain.TextDocument{
					Title:   "Project Structure",
					TreeDir: "gurih-siasn",
				},
			},
			{
				Name:       "siasn-dsl-example",
				OutputFile: "siasn-dsl-example.png",
				Mode:       domain.ModeTextDocument,
				Doc: &domain.TextDocument{
					Title:      "gurih-siasn/workflow.kdl",
					SourceFile: "gurih-siasn/workflow.kdl",
					Anchor:     `workflow "PegawaiStatusWorkflow"`,
				},
			},
		},
	}, nil
}
