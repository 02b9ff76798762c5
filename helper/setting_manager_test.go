package helper

import (
	"testing"

	"ticket_server/model"
)

func TestSettingManagerLoad(t *testing.T) {
	setupTestDB(t)

	if got := Settings.Get("qr_box_size"); got != "10" {
		t.Errorf("qr_box_size = %q, want 10", got)
	}
	if got := Settings.GetInt("qr_border", 99); got != 4 {
		t.Errorf("qr_border = %d, want 4", got)
	}
	if got := Settings.GetInt("missing_setting", 7); got != 7 {
		t.Errorf("missing setting = %d, want fallback 7", got)
	}
	if !Settings.GetBool("qr_fit", false) {
		t.Error("qr_fit should parse as true")
	}

	if got := Settings.MainCompany(); got != "City Transit Authority" {
		t.Errorf("main company = %q", got)
	}
	if got := Settings.MainCompanyInn(); got != "7840379186" {
		t.Errorf("main company inn = %q", got)
	}
}

func TestSettingManagerRefresh(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Model(&model.Setting{}).Where("name = ?", "qr_box_size").
		Update("value", "12").Error; err != nil {
		t.Fatalf("update setting: %v", err)
	}

	// readers see the old value until an administrative refresh
	if got := Settings.Get("qr_box_size"); got != "10" {
		t.Errorf("pre-refresh qr_box_size = %q, want cached 10", got)
	}
	if err := Settings.Refresh(db); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := Settings.Get("qr_box_size"); got != "12" {
		t.Errorf("post-refresh qr_box_size = %q, want 12", got)
	}
}

func TestSettingManagerQRConfig(t *testing.T) {
	setupTestDB(t)

	cfg := Settings.QRConfig()
	if cfg.BoxSize != 10 {
		t.Errorf("box size = %d, want 10", cfg.BoxSize)
	}
	if cfg.Border != 4 {
		t.Errorf("border = %d, want 4", cfg.Border)
	}
	if !cfg.Fit {
		t.Error("fit should be true")
	}
}
