package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"erp-backend/internal/auth"
	"erp-backend/internal/config"
	"erp-backend/internal/database"
	"erp-backend/internal/database/models"
	"erp-backend/internal/sequence"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
}

type PlanItemData struct {
	ItemCode   string  `yaml:"item_code"`
	ItemName   string  `yaml:"item_name"`
	PlannedQty float64 `yaml:"planned_qty"`
	UOM        string  `yaml:"uom"`
}

type PlanData struct {
	Title         string                 `yaml:"title"`
	Description   string                 `yaml:"description"`
	Status        string                 `yaml:"status"`
	Priority      string                 `yaml:"priority"`
	StartDate     string                 `yaml:"start_date"`
	EndDate       string                 `yaml:"end_date"`
	EstimatedCost string                 `yaml:"estimated_cost"`
	CreatedBy     string                 `yaml:"created_by"`
	Items         []PlanItemData         `yaml:"items,omitempty"`
	Metadata      map[string]interface{} `yaml:"metadata,omitempty"`
}

type TaskData struct {
	Title          string  `yaml:"title"`
	TaskType       string  `yaml:"task_type"`
	Workstation    string  `yaml:"workstation"`
	EstimatedHours float64 `yaml:"estimated_hours"`
	HourRate       string  `yaml:"hour_rate"`
}

type WorkOrderData struct {
	Title              string     `yaml:"title"`
	Plan               string     `yaml:"plan,omitempty"`
	Priority           string     `yaml:"priority"`
	ProductionItemCode string     `yaml:"production_item_code"`
	ProductionItemName string     `yaml:"production_item_name"`
	Qty                float64    `yaml:"qty"`
	StockUOM           string     `yaml:"stock_uom"`
	PlannedStartDate   string     `yaml:"planned_start_date"`
	PlannedEndDate     string     `yaml:"planned_end_date"`
	CreatedBy          string     `yaml:"created_by"`
	AssignedTo         string     `yaml:"assigned_to,omitempty"`
	Tasks              []TaskData `yaml:"tasks,omitempty"`
}

type TenantData struct {
	ID         string          `yaml:"id"`
	Name       string          `yaml:"name"`
	Users      []UserData      `yaml:"users"`
	Plans      []PlanData      `yaml:"production_plans"`
	WorkOrders []WorkOrderData `yaml:"work_orders"`
}

// File structures
type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	tenants, err := loadTenants("scripts/data")
	if err != nil {
		log.Fatalf("Failed to read YAML files: %v", err)
	}

	seeded := make(map[uuid.UUID][]models.User)
	for _, tenant := range tenants {
		users, err := loadTenant(db, tenant)
		if err != nil {
			log.Fatalf("Failed to load tenant %s: %v", tenant.Name, err)
		}
		seeded[users[0].TenantID] = users
	}

	if !cfg.IsProduction() && cfg.JWTSecret != "" {
		printDevTokens(cfg, seeded)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadTenants(dataDir string) ([]TenantData, error) {
	var all []TenantData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file TenantsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		all = append(all, file.Tenants...)
		return nil
	})

	return all, err
}

// loadTenant seeds one tenant inside a transaction. Existing rows, matched by
// email or document number, are left untouched.
func loadTenant(db *gorm.DB, tenant TenantData) ([]models.User, error) {
	tenantID, err := uuid.Parse(tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid tenant id %q: %w", tenant.ID, err)
	}
	if len(tenant.Users) == 0 {
		return nil, errors.New("tenant has no users")
	}

	var users []models.User
	err = db.Transaction(func(tx *gorm.DB) error {
		byEmail := make(map[string]uuid.UUID)
		for _, u := range tenant.Users {
			user, created, err := createUser(tx, tenantID, u)
			if err != nil {
				return err
			}
			if created {
				log.Printf("  👤 user %s", user.Email)
			}
			byEmail[user.Email] = user.ID
			users = append(users, *user)
		}

		plans := make(map[string]uuid.UUID)
		for i, p := range tenant.Plans {
			plan, created, err := createPlan(tx, tenantID, i+1, p, byEmail)
			if err != nil {
				return fmt.Errorf("plan %q: %w", p.Title, err)
			}
			if created {
				log.Printf("  📋 plan %s %s", plan.PlanNumber, plan.Title)
			}
			plans[p.Title] = plan.ID
		}

		for i, w := range tenant.WorkOrders {
			wo, created, err := createWorkOrder(tx, tenantID, i+1, w, byEmail, plans)
			if err != nil {
				return fmt.Errorf("work order %q: %w", w.Title, err)
			}
			if created {
				log.Printf("  🛠  work order %s with %d tasks", wo.WorkOrderNumber, len(wo.Tasks))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("🏭 %s: %d users, %d plans, %d work orders", tenant.Name, len(tenant.Users), len(tenant.Plans), len(tenant.WorkOrders))
	return users, nil
}

func createUser(tx *gorm.DB, tenantID uuid.UUID, data UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))
	var existing models.User
	err := tx.Where("tenant_id = ? AND email = ?", tenantID, email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	role := models.UserRole(data.Role)
	if role == "" {
		role = models.UserRoleOperator
	}
	user := &models.User{TenantID: tenantID, Email: email, FullName: data.FullName, Role: role}
	if err := tx.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func createPlan(tx *gorm.DB, tenantID uuid.UUID, seq int, data PlanData, users map[string]uuid.UUID) (*models.ProductionPlan, bool, error) {
	now := time.Now()
	number := sequence.PlanNumber(now.Year(), int64(seq))

	var existing models.ProductionPlan
	err := tx.Where("tenant_id = ? AND plan_number = ?", tenantID, number).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	creator, ok := users[strings.ToLower(data.CreatedBy)]
	if !ok {
		return nil, false, fmt.Errorf("unknown user %q", data.CreatedBy)
	}
	start, err := parseDate(data.StartDate)
	if err != nil {
		return nil, false, err
	}
	end, err := parseDate(data.EndDate)
	if err != nil {
		return nil, false, err
	}
	cost := decimal.Zero
	if data.EstimatedCost != "" {
		if cost, err = decimal.NewFromString(data.EstimatedCost); err != nil {
			return nil, false, err
		}
	}

	plan := &models.ProductionPlan{
		TenantID:      tenantID,
		PlanNumber:    number,
		Title:         data.Title,
		Description:   data.Description,
		Status:        models.PlanStatus(orDefault(data.Status, string(models.PlanStatusDraft))),
		Priority:      models.Priority(orDefault(data.Priority, string(models.PriorityNormal))),
		PlanDate:      now.Truncate(24 * time.Hour),
		StartDate:     start,
		EndDate:       end,
		EstimatedCost: cost,
		CreatedBy:     creator,
	}
	if plan.Status == models.PlanStatusSubmitted {
		plan.ApprovedBy = &creator
		plan.ApprovedAt = &now
	}
	if len(data.Metadata) > 0 {
		raw, err := json.Marshal(data.Metadata)
		if err != nil {
			return nil, false, err
		}
		plan.Metadata = raw
	}
	for _, item := range data.Items {
		plan.Items = append(plan.Items, models.ProductionPlanItem{
			TenantID:   tenantID,
			ItemCode:   item.ItemCode,
			ItemName:   item.ItemName,
			PlannedQty: item.PlannedQty,
			UOM:        item.UOM,
		})
		plan.TotalPlannedQty += item.PlannedQty
	}

	if err := tx.Create(plan).Error; err != nil {
		return nil, false, err
	}
	return plan, true, nil
}

func createWorkOrder(tx *gorm.DB, tenantID uuid.UUID, seq int, data WorkOrderData, users map[string]uuid.UUID, plans map[string]uuid.UUID) (*models.WorkOrder, bool, error) {
	number := sequence.WorkOrderNumber(time.Now().Year(), int64(seq))

	var existing models.WorkOrder
	err := tx.Where("tenant_id = ? AND work_order_number = ?", tenantID, number).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	creator, ok := users[strings.ToLower(data.CreatedBy)]
	if !ok {
		return nil, false, fmt.Errorf("unknown user %q", data.CreatedBy)
	}
	start, err := parseDate(data.PlannedStartDate)
	if err != nil {
		return nil, false, err
	}
	end, err := parseDate(data.PlannedEndDate)
	if err != nil {
		return nil, false, err
	}

	wo := &models.WorkOrder{
		TenantID:           tenantID,
		WorkOrderNumber:    number,
		Title:              data.Title,
		Status:             models.WorkOrderStatusDraft,
		Priority:           models.Priority(orDefault(data.Priority, string(models.PriorityNormal))),
		ProductionItemCode: data.ProductionItemCode,
		ProductionItemName: data.ProductionItemName,
		Qty:                data.Qty,
		StockUOM:           data.StockUOM,
		PlannedStartDate:   start,
		PlannedEndDate:     end,
		CreatedBy:          creator,
		UseMultiLevelBOM:   true,
	}
	if data.Plan != "" {
		planID, ok := plans[data.Plan]
		if !ok {
			return nil, false, fmt.Errorf("unknown plan %q", data.Plan)
		}
		wo.ProductionPlanID = &planID
	}
	if data.AssignedTo != "" {
		assignee, ok := users[strings.ToLower(data.AssignedTo)]
		if !ok {
			return nil, false, fmt.Errorf("unknown user %q", data.AssignedTo)
		}
		wo.AssignedTo = &assignee
	}

	for i, t := range data.Tasks {
		rate := decimal.Zero
		if t.HourRate != "" {
			if rate, err = decimal.NewFromString(t.HourRate); err != nil {
				return nil, false, err
			}
		}
		wo.Tasks = append(wo.Tasks, models.WorkOrderTask{
			TenantID:       tenantID,
			TaskNumber:     sequence.TaskNumber(number, int64(i+1)),
			Title:          t.Title,
			Status:         models.TaskStatusPending,
			TaskType:       models.TaskType(orDefault(t.TaskType, string(models.TaskTypeOperation))),
			SequenceOrder:  i + 1,
			Workstation:    t.Workstation,
			EstimatedHours: t.EstimatedHours,
			HourRate:       rate,
		})
	}

	if err := tx.Create(wo).Error; err != nil {
		return nil, false, err
	}
	return wo, true, nil
}

func printDevTokens(cfg *config.Config, tenants map[uuid.UUID][]models.User) {
	svc, err := auth.NewAuthService(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	if err != nil {
		log.Printf("Skipping dev tokens: %v", err)
		return
	}
	log.Println("🔑 Development tokens:")
	for _, users := range tenants {
		for _, u := range users {
			token, err := svc.IssueToken(u.ID, u.TenantID, u.Email, string(u.Role))
			if err != nil {
				log.Printf("  %s: %v", u.Email, err)
				continue
			}
			log.Printf("  %s (%s): %s", u.Email, u.Role, token.AccessToken)
		}
	}
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return &t, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
