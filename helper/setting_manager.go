package helper

import (
	"strconv"
	"sync"

	"ticket_server/constants"
	"ticket_server/model"
	"ticket_server/utils"

	"gorm.io/gorm"
)

// SettingManager is the process-wide configuration cache. It is populated
// once at startup and after that only changes through Refresh, which
// administrative writers call after committing a settings change. Readers
// never hit the database.
type SettingManager struct {
	mu             sync.RWMutex
	values         map[string]string
	mainCompany    string
	mainCompanyInn string
}

// Settings is the single app-scoped instance, loaded from main.
var Settings = &SettingManager{values: map[string]string{}}

// Load reads all settings and the main-company identity from the database.
func (sm *SettingManager) Load(db *gorm.DB) error {
	var settings []model.Setting
	if err := db.Find(&settings).Error; err != nil {
		return err
	}

	var company model.Company
	companyErr := db.Where("category = ?", constants.COMPANY_MAIN).First(&company).Error

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.values = make(map[string]string, len(settings))
	for _, setting := range settings {
		sm.values[setting.Name] = setting.Value
	}
	if companyErr == nil {
		sm.mainCompany = company.Name
		sm.mainCompanyInn = company.Inn
	}
	return nil
}

// Refresh re-reads everything after an administrative write.
func (sm *SettingManager) Refresh(db *gorm.DB) error {
	return sm.Load(db)
}

func (sm *SettingManager) Get(name string) string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.values[name]
}

func (sm *SettingManager) GetInt(name string, fallback int) int {
	v := sm.Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func (sm *SettingManager) GetBool(name string, fallback bool) bool {
	v := sm.Get(name)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func (sm *SettingManager) MainCompany() string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.mainCompany
}

func (sm *SettingManager) MainCompanyInn() string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.mainCompanyInn
}

// QRConfig assembles the rendering parameters from the qr_* settings.
func (sm *SettingManager) QRConfig() utils.QRConfig {
	return utils.QRConfig{
		Version:   sm.GetInt("qr_version", 0),
		Level:     utils.RecoveryLevelFromSetting(sm.GetInt("qr_error_correction", 0)),
		BoxSize:   sm.GetInt("qr_box_size", 10),
		Border:    sm.GetInt("qr_border", 4),
		Fit:       sm.GetBool("qr_fit", true),
		Color:     utils.ParseColor(sm.Get("qr_color")),
		BackColor: utils.ParseColor(sm.Get("qr_back_color")),
	}
}
