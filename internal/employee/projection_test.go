package employee_test

import (
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/employee-directory/internal/employee"
	"github.com/frahmantamala/employee-directory/internal/organization"
)

var _ = Describe("Projection", func() {
	var emp *employee.Employee

	BeforeEach(func() {
		phone := "+1-555-123-4567"
		emp = &employee.Employee{
			ID:         uuid.New(),
			FirstName:  "Alice",
			LastName:   "Smith",
			Email:      "alice.smith@techcorp.com",
			Phone:      &phone,
			Department: "Engineering",
			Position:   "Software Engineer",
			Location:   "New York",
			Status:     employee.StatusActive,
			HireDate:   time.Date(2022, time.March, 14, 0, 0, 0, 0, time.UTC),
		}
	})

	It("includes only the visible columns plus id", func() {
		out := employee.Project(emp, []string{"email", "department"})

		Expect(out).To(HaveLen(3))
		Expect(out["id"]).To(Equal(emp.ID))
		Expect(out["email"]).To(Equal("alice.smith@techcorp.com"))
		Expect(out["department"]).To(Equal("Engineering"))
	})

	It("always includes id even when not listed", func() {
		out := employee.Project(emp, []string{"status"})
		Expect(out).To(HaveKey("id"))
	})

	It("adds full_name only when both name parts are visible", func() {
		both := employee.Project(emp, []string{"first_name", "last_name"})
		Expect(both["full_name"]).To(Equal("Alice Smith"))

		firstOnly := employee.Project(emp, []string{"first_name"})
		Expect(firstOnly).NotTo(HaveKey("full_name"))

		lastOnly := employee.Project(emp, []string{"last_name"})
		Expect(lastOnly).NotTo(HaveKey("full_name"))
	})

	It("silently ignores unknown column keys", func() {
		out := employee.Project(emp, []string{"email", "salary", "ssn"})

		Expect(out).To(HaveLen(2))
		Expect(out).NotTo(HaveKey("salary"))
		Expect(out).NotTo(HaveKey("ssn"))
	})

	It("serializes hire_date as an ISO-8601 date", func() {
		out := employee.Project(emp, []string{"hire_date"})
		Expect(out["hire_date"]).To(Equal("2022-03-14"))
	})

	It("keeps the output key set within the permitted bound for every visible set", func() {
		visibleSets := [][]string{
			nil,
			{"first_name"},
			{"first_name", "last_name", "email"},
			organization.DefaultVisibleColumns(),
			{"phone", "hire_date", "bogus"},
		}

		for _, visible := range visibleSets {
			out := employee.Project(emp, visible)

			allowed := map[string]bool{"id": true}
			for _, key := range visible {
				allowed[key] = true
			}
			hasFirst := allowed["first_name"]
			hasLast := allowed["last_name"]
			if hasFirst && hasLast {
				allowed["full_name"] = true
			}

			for key := range out {
				Expect(allowed[key]).To(BeTrue(), "unexpected key %q for visible set %v", key, visible)
			}
		}
	})
})
