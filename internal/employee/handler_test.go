package employee_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	orgDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/organization"
	"github.com/frahmantamala/employee-directory/internal/employee"
	employeePostgres "github.com/frahmantamala/employee-directory/internal/employee/postgres"
	"github.com/frahmantamala/employee-directory/internal/organization"
	organizationPostgres "github.com/frahmantamala/employee-directory/internal/organization/postgres"
	"github.com/frahmantamala/employee-directory/internal/transport"
)

// SQLite-compatible mirrors of the production models; postgres defaults like
// now() do not exist on sqlite.
type SQLiteOrganization struct {
	ID        uuid.UUID `gorm:"column:id;type:text;primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex;not null"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (SQLiteOrganization) TableName() string {
	return "organizations"
}

type SQLiteOrganizationConfig struct {
	ID             int64                   `gorm:"column:id;primaryKey"`
	OrganizationID uuid.UUID               `gorm:"column:organization_id;type:text;uniqueIndex;not null"`
	VisibleColumns orgDatamodel.ColumnList `gorm:"column:visible_columns;type:text"`
	ColumnOrder    orgDatamodel.ColumnList `gorm:"column:column_order;type:text"`
	CreatedAt      time.Time               `gorm:"column:created_at"`
	UpdatedAt      time.Time               `gorm:"column:updated_at"`
}

func (SQLiteOrganizationConfig) TableName() string {
	return "organization_configs"
}

type SQLiteEmployee struct {
	ID             uuid.UUID `gorm:"column:id;type:text;primaryKey"`
	OrganizationID uuid.UUID `gorm:"column:organization_id;type:text;not null;index"`
	FirstName      string    `gorm:"column:first_name;not null"`
	LastName       string    `gorm:"column:last_name;not null"`
	Email          string    `gorm:"column:email;not null"`
	Phone          *string   `gorm:"column:phone"`
	Department     string    `gorm:"column:department;not null"`
	Position       string    `gorm:"column:position;not null"`
	Location       string    `gorm:"column:location;not null"`
	Status         string    `gorm:"column:status;not null;default:active"`
	HireDate       time.Time `gorm:"column:hire_date;not null"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (SQLiteEmployee) TableName() string {
	return "employees"
}

var _ = Describe("Employee Search Integration", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
		orgID  uuid.UUID
	)

	searchURL := func(id uuid.UUID, query string) string {
		url := "/api/v1/organizations/" + id.String() + "/employees/search/"
		if query != "" {
			url += "?" + query
		}
		return url
	}

	doSearch := func(url string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	createEmployee := func(first, last, email, department, position, location, status string) {
		Expect(db.Create(&SQLiteEmployee{
			ID:             uuid.New(),
			OrganizationID: orgID,
			FirstName:      first,
			LastName:       last,
			Email:          email,
			Department:     department,
			Position:       position,
			Location:       location,
			Status:         status,
			HireDate:       time.Date(2022, time.January, 10, 0, 0, 0, 0, time.UTC),
		}).Error).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteOrganization{}, &SQLiteOrganizationConfig{}, &SQLiteEmployee{})
		Expect(err).NotTo(HaveOccurred())

		orgRepo := organizationPostgres.NewOrganizationRepository(db)
		orgService := organization.NewService(orgRepo, slogger)

		empRepo := employeePostgres.NewEmployeeRepository(db)
		empService := employee.NewService(empRepo, orgService, slogger)
		handler := employee.NewHandler(&transport.BaseHandler{Logger: slogger}, empService)

		router = chi.NewRouter()
		router.Get("/api/v1/organizations/{id}/employees/search/", handler.SearchEmployees)

		orgID = uuid.New()
		Expect(db.Create(&SQLiteOrganization{ID: orgID, Name: "Organization 1", IsActive: true}).Error).NotTo(HaveOccurred())

		createEmployee("Alice", "Smith", "alice.smith@org1.com", "Engineering", "Software Engineer", "New York", employee.StatusActive)
		createEmployee("Bob", "Johnson", "bob.johnson@org1.com", "Marketing", "Marketing Specialist", "London", employee.StatusActive)
	})

	decode := func(w *httptest.ResponseRecorder) map[string]interface{} {
		var body map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		return body
	}

	It("returns only matches for a department filter", func() {
		w := doSearch(searchURL(orgID, "department=Engineering"))

		Expect(w.Code).To(Equal(http.StatusOK))
		body := decode(w)
		Expect(body["count"]).To(BeEquivalentTo(1))

		results := body["results"].([]interface{})
		Expect(results).To(HaveLen(1))
		row := results[0].(map[string]interface{})
		Expect(row["first_name"]).To(Equal("Alice"))
		Expect(row["full_name"]).To(Equal("Alice Smith"))
	})

	It("returns every matching employee for a status filter", func() {
		w := doSearch(searchURL(orgID, "status=active"))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["count"]).To(BeEquivalentTo(2))
	})

	It("matches name substrings case-insensitively", func() {
		w := doSearch(searchURL(orgID, "search=ALIC"))

		Expect(w.Code).To(Equal(http.StatusOK))
		body := decode(w)
		Expect(body["count"]).To(BeEquivalentTo(1))
	})

	It("echoes the tenant and the effective parameters in meta", func() {
		w := doSearch(searchURL(orgID, "department=Engineering"))

		body := decode(w)
		meta := body["meta"].(map[string]interface{})

		org := meta["organization"].(map[string]interface{})
		Expect(org["id"]).To(Equal(orgID.String()))
		Expect(org["name"]).To(Equal("Organization 1"))

		columns := meta["visible_columns"].([]interface{})
		Expect(columns).To(HaveLen(7))

		params := meta["search_params"].(map[string]interface{})
		Expect(params["department"]).To(Equal("Engineering"))
		Expect(params["page"]).To(BeEquivalentTo(1))
		Expect(params["page_size"]).To(BeEquivalentTo(50))
	})

	It("builds pagination links that preserve the other query parameters", func() {
		w := doSearch(searchURL(orgID, "status=active&page_size=1"))

		body := decode(w)
		Expect(body["previous"]).To(BeNil())
		Expect(body["next"]).NotTo(BeNil())

		next := body["next"].(string)
		Expect(next).To(ContainSubstring("page=2"))
		Expect(next).To(ContainSubstring("page_size=1"))
		Expect(next).To(ContainSubstring("status=active"))

		w2 := doSearch(next)
		body2 := decode(w2)
		Expect(body2["next"]).To(BeNil())
		Expect(body2["previous"]).NotTo(BeNil())
		Expect(body2["previous"].(string)).To(ContainSubstring("page=1"))
	})

	It("returns 404 for a page past the last one", func() {
		w := doSearch(searchURL(orgID, "page=5"))

		Expect(w.Code).To(Equal(http.StatusNotFound))
		errObj := decode(w)["error"].(map[string]interface{})
		Expect(errObj["message"]).To(Equal("Invalid page"))
	})

	It("returns an empty first page for a filter with no matches", func() {
		w := doSearch(searchURL(orgID, "department=Accounting"))

		Expect(w.Code).To(Equal(http.StatusOK))
		body := decode(w)
		Expect(body["count"]).To(BeEquivalentTo(0))
		Expect(body["results"]).To(BeEmpty())
	})

	It("restricts the projection to the tenant's configured columns", func() {
		Expect(db.Create(&SQLiteOrganizationConfig{
			OrganizationID: orgID,
			VisibleColumns: orgDatamodel.ColumnList{"email", "department"},
		}).Error).NotTo(HaveOccurred())

		w := doSearch(searchURL(orgID, ""))

		body := decode(w)
		results := body["results"].([]interface{})
		Expect(results).To(HaveLen(2))
		for _, raw := range results {
			row := raw.(map[string]interface{})
			Expect(row).To(HaveLen(3))
			Expect(row).To(HaveKey("id"))
			Expect(row).To(HaveKey("email"))
			Expect(row).To(HaveKey("department"))
		}
	})

	It("rejects an invalid status with a field-level detail", func() {
		w := doSearch(searchURL(orgID, "status=fired"))

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		body := decode(w)
		errObj := body["error"].(map[string]interface{})
		Expect(errObj["type"]).To(Equal("VALIDATION_ERROR"))

		details := errObj["details"].(map[string]interface{})
		fieldErrors := details["errors"].([]interface{})
		Expect(fieldErrors).To(HaveLen(1))
		Expect(fieldErrors[0].(map[string]interface{})["field"]).To(Equal("status"))
	})

	It("returns 404 for an unknown organization", func() {
		w := doSearch(searchURL(uuid.New(), ""))

		Expect(w.Code).To(Equal(http.StatusNotFound))
		errObj := decode(w)["error"].(map[string]interface{})
		Expect(errObj["message"]).To(Equal("Organization not found or inactive"))
	})

	It("returns the same 404 for an inactive organization", func() {
		inactiveID := uuid.New()
		Expect(db.Create(&SQLiteOrganization{ID: inactiveID, Name: "Dormant Inc", IsActive: false}).Error).NotTo(HaveOccurred())

		w := doSearch(searchURL(inactiveID, ""))

		Expect(w.Code).To(Equal(http.StatusNotFound))
		errObj := decode(w)["error"].(map[string]interface{})
		Expect(errObj["message"]).To(Equal("Organization not found or inactive"))
	})

	It("returns 404 for a malformed organization id", func() {
		w := doSearch("/api/v1/organizations/not-a-uuid/employees/search/")

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
