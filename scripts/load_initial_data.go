package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"metadata-catalog/internal/config"
	"metadata-catalog/internal/database"
	"metadata-catalog/internal/database/models"
	apperrors "metadata-catalog/internal/errors"
	"metadata-catalog/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed files
type UserData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Email       string `yaml:"email"`
	IsAdmin     bool   `yaml:"is_admin"`
	Deleted     bool   `yaml:"deleted"`
}

type TeamData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	Email       string `yaml:"email"`
	TeamType    string `yaml:"team_type"`
}

type TestDefinitionData struct {
	Name          string   `yaml:"name"`
	DisplayName   string   `yaml:"display_name"`
	Description   string   `yaml:"description"`
	EntityType    string   `yaml:"entity_type"`
	TestPlatforms []string `yaml:"test_platforms"`
}

type OwnerData struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
}

type TestSuiteData struct {
	Name               string     `yaml:"name"`
	FullyQualifiedName string     `yaml:"fully_qualified_name"`
	DisplayName        string     `yaml:"display_name"`
	Description        string     `yaml:"description"`
	Owner              *OwnerData `yaml:"owner,omitempty"`
}

type ResultData struct {
	Status    string    `yaml:"status"`
	Result    string    `yaml:"result"`
	Timestamp time.Time `yaml:"timestamp"`
}

type TestCaseData struct {
	Name            string            `yaml:"name"`
	TestSuite       string            `yaml:"test_suite"`
	TestDefinition  string            `yaml:"test_definition"`
	DisplayName     string            `yaml:"display_name"`
	Description     string            `yaml:"description"`
	EntityLink      string            `yaml:"entity_link"`
	ParameterValues map[string]string `yaml:"parameter_values,omitempty"`
	Result          *ResultData       `yaml:"result,omitempty"`
}

// CatalogFile is the layout of every YAML file under the data directory.
// A file may carry any subset of the sections.
type CatalogFile struct {
	Users           []UserData           `yaml:"users"`
	Teams           []TeamData           `yaml:"teams"`
	TestDefinitions []TestDefinitionData `yaml:"test_definitions"`
	TestSuites      []TestSuiteData      `yaml:"test_suites"`
	TestCases       []TestCaseData       `yaml:"test_cases"`
}

func (f *CatalogFile) merge(other CatalogFile) {
	f.Users = append(f.Users, other.Users...)
	f.Teams = append(f.Teams, other.Teams...)
	f.TestDefinitions = append(f.TestDefinitions, other.TestDefinitions...)
	f.TestSuites = append(f.TestSuites, other.TestSuites...)
	f.TestCases = append(f.TestCases, other.TestCases...)
}

func main() {
	dataDir := flag.String("data", "scripts/data", "directory holding the seed YAML files")
	flag.Parse()

	_ = godotenv.Load()
	log.Println("🚀 Loading initial catalog data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalog, err := readCatalog(*dataDir)
	if err != nil {
		log.Fatalf("Failed to read seed files: %v", err)
	}
	if err := catalog.validate(); err != nil {
		log.Fatalf("Invalid seed data: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed(db, catalog); err != nil {
		if apperrors.IsAlreadyExists(err) {
			log.Fatalf("Seed data collides with an existing row, nothing was loaded: %v", err)
		}
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// readCatalog merges every .yaml/.yml file below dataDir in lexical order.
func readCatalog(dataDir string) (CatalogFile, error) {
	var all CatalogFile

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file CatalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		all.merge(file)
		return nil
	})

	return all, err
}

// validate checks references between sections before touching the database.
func (f CatalogFile) validate() error {
	var errs []error

	users := map[string]bool{}
	for _, u := range f.Users {
		if u.Name == "" || u.Email == "" {
			errs = append(errs, fmt.Errorf("user %q needs a name and an email", u.Name))
		}
		users[u.Name] = true
	}
	teams := map[string]bool{}
	for _, t := range f.Teams {
		if t.Name == "" {
			errs = append(errs, errors.New("team without a name"))
		}
		teams[t.Name] = true
	}
	definitions := map[string]bool{}
	for _, d := range f.TestDefinitions {
		definitions[d.Name] = true
	}
	suites := map[string]bool{}
	for _, s := range f.TestSuites {
		if s.Name == "" {
			errs = append(errs, errors.New("test suite without a name"))
		}
		suites[s.Name] = true
		if s.Owner == nil {
			continue
		}
		switch models.OwnerType(s.Owner.Type) {
		case models.OwnerTypeUser:
			if !users[s.Owner.Name] {
				errs = append(errs, fmt.Errorf("test suite %s: owner user %s is not defined", s.Name, s.Owner.Name))
			}
		case models.OwnerTypeTeam:
			if !teams[s.Owner.Name] {
				errs = append(errs, fmt.Errorf("test suite %s: owner team %s is not defined", s.Name, s.Owner.Name))
			}
		default:
			errs = append(errs, fmt.Errorf("test suite %s: unknown owner type %q", s.Name, s.Owner.Type))
		}
	}
	for _, c := range f.TestCases {
		if !suites[c.TestSuite] {
			errs = append(errs, fmt.Errorf("test case %s: test suite %s is not defined", c.Name, c.TestSuite))
		}
		if !definitions[c.TestDefinition] {
			errs = append(errs, fmt.Errorf("test case %s: test definition %s is not defined", c.Name, c.TestDefinition))
		}
		if c.Result != nil && !models.TestCaseStatus(c.Result.Status).IsValid() {
			errs = append(errs, fmt.Errorf("test case %s: unknown result status %q", c.Name, c.Result.Status))
		}
	}

	return errors.Join(errs...)
}

// seed upserts every entity by name in dependency order inside one transaction.
// Lookups and inserts go through the repositories bound to the transaction.
func seed(db *gorm.DB, f CatalogFile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		userIDs := map[string]uuid.UUID{}
		created := 0
		for _, u := range f.Users {
			user := models.User{
				BaseModel: models.BaseModel{Name: u.Name, DisplayName: u.DisplayName},
				Email:     u.Email,
				IsAdmin:   u.IsAdmin,
				Deleted:   u.Deleted,
			}
			isNew, err := upsert(tx, &user, &user.BaseModel,
				func() (*models.BaseModel, error) {
					found, err := users.GetByName(u.Name)
					if err != nil {
						return nil, notFoundAs(err, apperrors.ErrUserNotFound)
					}
					return &found.BaseModel, nil
				},
				func() error { return users.Create(&user) })
			if err != nil {
				return fmt.Errorf("failed to upsert user %s: %w", u.Name, err)
			}
			userIDs[u.Name] = user.ID
			if isNew {
				created++
			}
		}
		log.Printf("📋 Users: %d created, %d total", created, len(f.Users))

		teams := repository.NewTeamRepository(tx)
		teamIDs := map[string]uuid.UUID{}
		created = 0
		for _, t := range f.Teams {
			teamType := t.TeamType
			if teamType == "" {
				teamType = "Group"
			}
			team := models.Team{
				BaseModel: models.BaseModel{Name: t.Name, DisplayName: t.DisplayName, Description: t.Description},
				Email:     t.Email,
				TeamType:  teamType,
			}
			isNew, err := upsert(tx, &team, &team.BaseModel,
				func() (*models.BaseModel, error) {
					found, err := teams.GetByName(t.Name)
					if err != nil {
						return nil, notFoundAs(err, apperrors.ErrTeamNotFound)
					}
					return &found.BaseModel, nil
				},
				func() error { return teams.Create(&team) })
			if err != nil {
				return fmt.Errorf("failed to upsert team %s: %w", t.Name, err)
			}
			teamIDs[t.Name] = team.ID
			if isNew {
				created++
			}
		}
		log.Printf("📋 Teams: %d created, %d total", created, len(f.Teams))

		definitions := repository.NewTestDefinitionRepository(tx)
		definitionIDs := map[string]uuid.UUID{}
		created = 0
		for _, d := range f.TestDefinitions {
			entityType := d.EntityType
			if entityType == "" {
				entityType = "TABLE"
			}
			platforms, _ := json.Marshal(d.TestPlatforms)
			def := models.TestDefinition{
				BaseModel:     models.BaseModel{Name: d.Name, DisplayName: d.DisplayName, Description: d.Description},
				EntityType:    entityType,
				TestPlatforms: platforms,
			}
			isNew, err := upsert(tx, &def, &def.BaseModel,
				func() (*models.BaseModel, error) {
					found, err := definitions.GetByName(d.Name)
					if err != nil {
						return nil, notFoundAs(err, apperrors.ErrTestDefinitionNotFound)
					}
					return &found.BaseModel, nil
				},
				func() error { return definitions.Create(&def) })
			if err != nil {
				return fmt.Errorf("failed to upsert test definition %s: %w", d.Name, err)
			}
			definitionIDs[d.Name] = def.ID
			if isNew {
				created++
			}
		}
		log.Printf("📋 Test definitions: %d created, %d total", created, len(f.TestDefinitions))

		suites := repository.NewTestSuiteRepository(tx)
		suitesByName := map[string]models.TestSuite{}
		created = 0
		for _, s := range f.TestSuites {
			fqn := s.FullyQualifiedName
			if fqn == "" {
				fqn = s.Name
			}
			suite := models.TestSuite{
				BaseModel:          models.BaseModel{Name: s.Name, DisplayName: s.DisplayName, Description: s.Description, UpdatedBy: "seed"},
				FullyQualifiedName: fqn,
				Version:            0.1,
			}
			if s.Owner != nil {
				var id uuid.UUID
				switch models.OwnerType(s.Owner.Type) {
				case models.OwnerTypeUser:
					id = userIDs[s.Owner.Name]
				case models.OwnerTypeTeam:
					id = teamIDs[s.Owner.Name]
				}
				suite.OwnerID = &id
				suite.OwnerType = models.OwnerType(s.Owner.Type)
			}
			// a soft-deleted suite is invisible to GetByFQN, so its FQN
			// surfaces as ErrTestSuiteExists instead of being revived
			isNew, err := upsert(tx, &suite, &suite.BaseModel,
				func() (*models.BaseModel, error) {
					found, err := suites.GetByFQN(fqn)
					if err != nil {
						return nil, notFoundAs(err, apperrors.ErrTestSuiteNotFound)
					}
					return &found.BaseModel, nil
				},
				func() error { return suites.Create(&suite) })
			if err != nil {
				return fmt.Errorf("failed to upsert test suite %s: %w", s.Name, err)
			}
			suitesByName[s.Name] = suite
			if isNew {
				created++
			}
		}
		log.Printf("📋 Test suites: %d created, %d total", created, len(f.TestSuites))

		cases := repository.NewTestCaseRepository(tx)
		created = 0
		for _, c := range f.TestCases {
			suite := suitesByName[c.TestSuite]
			tc := models.TestCase{
				BaseModel:          models.BaseModel{Name: c.Name, DisplayName: c.DisplayName, Description: c.Description},
				FullyQualifiedName: suite.FullyQualifiedName + "." + c.Name,
				TestSuiteID:        suite.ID,
				TestDefinitionID:   definitionIDs[c.TestDefinition],
				EntityLink:         c.EntityLink,
				ParameterValues:    parameterValuesJSON(c.ParameterValues),
				Result:             resultJSON(c.Result),
			}
			isNew, err := upsert(tx, &tc, &tc.BaseModel,
				func() (*models.BaseModel, error) {
					found, err := cases.GetByFQN(tc.FullyQualifiedName)
					if err != nil {
						return nil, notFoundAs(err, apperrors.ErrTestCaseNotFound)
					}
					return &found.BaseModel, nil
				},
				func() error { return cases.Create(&tc) })
			if err != nil {
				return fmt.Errorf("failed to upsert test case %s: %w", tc.FullyQualifiedName, err)
			}
			if isNew {
				created++
			}
		}
		log.Printf("📋 Test cases: %d created, %d total", created, len(f.TestCases))

		return nil
	})
}

// upsert calls create when find reports the row missing, otherwise saves
// row over the stored record, keeping its ID and creation time. base must
// point into row.
func upsert(tx *gorm.DB, row interface{}, base *models.BaseModel, find func() (*models.BaseModel, error), create func() error) (bool, error) {
	existing, err := find()
	if apperrors.IsNotFound(err) {
		return true, create()
	}
	if err != nil {
		return false, err
	}

	base.ID = existing.ID
	base.CreatedAt = existing.CreatedAt
	return false, tx.Save(row).Error
}

// notFoundAs replaces gorm's missing-row error with notFound.
func notFoundAs(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

func parameterValuesJSON(values map[string]string) json.RawMessage {
	if len(values) == 0 {
		return nil
	}
	type parameterValue struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)
	list := make([]parameterValue, 0, len(names))
	for _, name := range names {
		list = append(list, parameterValue{Name: name, Value: values[name]})
	}
	b, _ := json.Marshal(list)
	return b
}

func resultJSON(r *ResultData) json.RawMessage {
	if r == nil {
		return nil
	}
	ts := r.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	b, _ := json.Marshal(map[string]interface{}{
		"timestamp":      ts.UnixMilli(),
		"testCaseStatus": r.Status,
		"result":         r.Result,
	})
	return b
}
