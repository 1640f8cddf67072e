package database

import (
	"fmt"
	"log/slog"

	"github.com/taalentio/talent-api/internal/config"
	"github.com/taalentio/talent-api/internal/model"

	"gorm.io/gorm"
)

// Migrate executes database migration based on configuration
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("⏭️  Migration de la base désactivée",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	slog.Warn("🔧 Migration de la base - toutes les tables seront supprimées puis recréées !",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	// Safety check: prevent accidental data loss in production
	if cfg.App.Env == "prod" || cfg.App.Env == "production" {
		return fmt.Errorf("🚨 DB_AUTO_MIGRATE=true est interdit en PRODUCTION (protection contre la perte de données)")
	}

	slog.Info("🗑️  Suppression des tables existantes...")
	if err := dropTables(db); err != nil {
		return fmt.Errorf("suppression des tables échouée: %w", err)
	}

	slog.Info("📦 Création des tables...")
	if err := RunAutoMigrate(db); err != nil {
		return fmt.Errorf("création des tables échouée: %w", err)
	}

	slog.Info("✅ Migration terminée !")
	return nil
}

// dropTables drops in reverse dependency order (FK constraints)
func dropTables(db *gorm.DB) error {
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		m := models[i]
		if !db.Migrator().HasTable(m) {
			continue
		}
		if err := db.Migrator().DropTable(m); err != nil {
			slog.Debug("Suppression de table échouée", "model", fmt.Sprintf("%T", m), "error", err)
			continue
		}
		slog.Debug("Table supprimée", "model", fmt.Sprintf("%T", m))
	}
	return nil
}

// Models lists persisted models in dependency order: independent tables first,
// tables holding foreign keys after.
func Models() []interface{} {
	return []interface{}{
		&model.Talent{},
		&model.CinemaTalent{},
		&model.Project{},
		&model.ProjectTalent{},
	}
}

// RunAutoMigrate creates tables based on model definitions
func RunAutoMigrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migration de %T échouée: %w", m, err)
		}
		slog.Debug("Table créée", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
