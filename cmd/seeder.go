package cmd

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	empDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/employee"
	orgDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/organization"
	rlDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/ratelimit"
	"github.com/frahmantamala/employee-directory/internal/employee"
)

var seedEmployees int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample organizations, column configurations and employees.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if err != nil {
			log.Fatalf("failed to open gorm: %v", err)
		}

		if clearData {
			fmt.Println("Clearing existing data...")
			for _, model := range []interface{}{
				&rlDatamodel.RateLimitRecord{},
				&empDatamodel.Employee{},
				&orgDatamodel.OrganizationConfig{},
				&orgDatamodel.Organization{},
			} {
				if err := db.Where("1 = 1").Delete(model).Error; err != nil {
					log.Fatalf("failed to clear table: %v", err)
				}
			}
		}

		seedOrganizations(db)
	},
}

type seedOrg struct {
	Name    string
	Columns []string
}

var seedOrgs = []seedOrg{
	// Organization 1 carries a deterministic pair of employees used in docs
	// and smoke tests; it keeps the default column configuration.
	{Name: "Organization 1", Columns: nil},
	{Name: "TechCorp Solutions", Columns: []string{"first_name", "last_name", "email", "department", "position", "status"}},
	{Name: "Global Industries", Columns: []string{"first_name", "last_name", "department", "location", "position"}},
	{Name: "Innovation Labs", Columns: []string{"first_name", "last_name", "email", "phone", "department", "location", "status"}},
}

var (
	seedDepartments = []string{
		"Engineering", "Marketing", "Sales", "HR", "Finance",
		"Operations", "Product", "Design", "Legal", "IT",
	}
	seedPositions = []string{
		"Software Engineer", "Senior Engineer", "Team Lead", "Manager",
		"Director", "VP", "Analyst", "Specialist", "Coordinator",
		"Associate", "Principal", "Architect", "Consultant",
	}
	seedLocations = []string{
		"New York", "San Francisco", "London", "Tokyo", "Singapore",
		"Berlin", "Toronto", "Sydney", "Mumbai", "São Paulo",
	}
	seedFirstNames = []string{
		"John", "Jane", "Michael", "Sarah", "David", "Emily", "Robert",
		"Lisa", "James", "Maria", "William", "Jennifer", "Richard",
		"Patricia", "Charles", "Linda", "Joseph", "Elizabeth", "Thomas",
		"Barbara", "Christopher", "Susan", "Daniel", "Jessica", "Matthew",
	}
	seedLastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
		"Miller", "Davis", "Rodriguez", "Martinez", "Hernandez",
		"Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor",
		"Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	}
	// biased towards active, matching real directory distributions
	seedStatuses = []string{
		employee.StatusActive, employee.StatusActive, employee.StatusActive,
		employee.StatusInactive, employee.StatusOnLeave,
	}
)

func seedOrganizations(db *gorm.DB) {
	for _, orgData := range seedOrgs {
		org := orgDatamodel.Organization{}
		err := db.Where("name = ?", orgData.Name).First(&org).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			org = orgDatamodel.Organization{
				ID:       uuid.New(),
				Name:     orgData.Name,
				IsActive: true,
			}
			if err := db.Create(&org).Error; err != nil {
				log.Fatalf("failed to create organization %s: %v", orgData.Name, err)
			}
			fmt.Printf("Created organization: %s\n", org.Name)
		case err != nil:
			log.Fatalf("failed to look up organization %s: %v", orgData.Name, err)
		default:
			fmt.Printf("Organization already exists: %s\n", org.Name)
		}

		if len(orgData.Columns) > 0 {
			var config orgDatamodel.OrganizationConfig
			err := db.Where("organization_id = ?", org.ID).First(&config).Error
			if err == gorm.ErrRecordNotFound {
				config = orgDatamodel.OrganizationConfig{
					OrganizationID: org.ID,
					VisibleColumns: orgData.Columns,
					ColumnOrder:    orgData.Columns,
				}
				if err := db.Create(&config).Error; err != nil {
					log.Fatalf("failed to create config for %s: %v", org.Name, err)
				}
				fmt.Printf("Created config for: %s\n", org.Name)
			} else if err != nil {
				log.Fatalf("failed to look up config for %s: %v", org.Name, err)
			}
		}

		if org.Name == "Organization 1" {
			seedFixtureEmployees(db, org)
			continue
		}
		seedRandomEmployees(db, org)
	}

	var totalOrgs, totalEmployees int64
	db.Model(&orgDatamodel.Organization{}).Count(&totalOrgs)
	db.Model(&empDatamodel.Employee{}).Count(&totalEmployees)
	fmt.Printf("Successfully populated database with %d organizations and %d employees\n", totalOrgs, totalEmployees)
}

// seedFixtureEmployees inserts the two well-known employees of Organization 1.
func seedFixtureEmployees(db *gorm.DB, org orgDatamodel.Organization) {
	fixtures := []empDatamodel.Employee{
		{
			FirstName:  "Alice",
			LastName:   "Smith",
			Email:      "alice.smith@organization1.com",
			Department: "Engineering",
			Position:   "Software Engineer",
			Location:   "New York",
			Status:     employee.StatusActive,
			HireDate:   time.Date(2022, time.March, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			FirstName:  "Bob",
			LastName:   "Johnson",
			Email:      "bob.johnson@organization1.com",
			Department: "Marketing",
			Position:   "Specialist",
			Location:   "London",
			Status:     employee.StatusActive,
			HireDate:   time.Date(2021, time.August, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, fixture := range fixtures {
		var exists int64
		db.Model(&empDatamodel.Employee{}).
			Where("organization_id = ? AND email = ?", org.ID, fixture.Email).
			Count(&exists)
		if exists > 0 {
			continue
		}

		fixture.ID = uuid.New()
		fixture.OrganizationID = org.ID
		if err := db.Create(&fixture).Error; err != nil {
			log.Fatalf("failed to create fixture employee %s: %v", fixture.Email, err)
		}
		fmt.Printf("Created fixture employee %s %s for %s\n", fixture.FirstName, fixture.LastName, org.Name)
	}
}

func seedRandomEmployees(db *gorm.DB, org orgDatamodel.Organization) {
	var existing int64
	db.Model(&empDatamodel.Employee{}).Where("organization_id = ?", org.ID).Count(&existing)

	toCreate := seedEmployees - int(existing)
	if toCreate <= 0 {
		fmt.Printf("Organization %s already has %d employees\n", org.Name, existing)
		return
	}

	emailDomain := strings.ToLower(strings.ReplaceAll(org.Name, " ", "")) + ".com"
	employees := make([]empDatamodel.Employee, 0, toCreate)
	for i := 0; i < toCreate; i++ {
		firstName := seedFirstNames[rand.Intn(len(seedFirstNames))]
		lastName := seedLastNames[rand.Intn(len(seedLastNames))]
		phone := fmt.Sprintf("+1-%d-%d-%d", 100+rand.Intn(900), 100+rand.Intn(900), 1000+rand.Intn(9000))

		employees = append(employees, empDatamodel.Employee{
			ID:             uuid.New(),
			OrganizationID: org.ID,
			FirstName:      firstName,
			LastName:       lastName,
			Email:          fmt.Sprintf("%s.%s%d@%s", strings.ToLower(firstName), strings.ToLower(lastName), i, emailDomain),
			Phone:          &phone,
			Department:     seedDepartments[rand.Intn(len(seedDepartments))],
			Position:       seedPositions[rand.Intn(len(seedPositions))],
			Location:       seedLocations[rand.Intn(len(seedLocations))],
			Status:         seedStatuses[rand.Intn(len(seedStatuses))],
			HireDate:       time.Now().AddDate(0, 0, -(30 + rand.Intn(1795))),
		})
	}

	if err := db.CreateInBatches(employees, 50).Error; err != nil {
		log.Fatalf("failed to create employees for %s: %v", org.Name, err)
	}
	fmt.Printf("Created %d employees for %s\n", toCreate, org.Name)
}
