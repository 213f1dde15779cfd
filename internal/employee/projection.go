package employee

// fieldAccessors is the fixed projection schema: every projectable employee
// field mapped to its accessor. Projection walks this table rather than
// reflecting over the struct, so the output surface is a closed set.
var fieldAccessors = map[string]func(*Employee) interface{}{
	"id":         func(e *Employee) interface{} { return e.ID },
	"first_name": func(e *Employee) interface{} { return e.FirstName },
	"last_name":  func(e *Employee) interface{} { return e.LastName },
	"email":      func(e *Employee) interface{} { return e.Email },
	"phone":      func(e *Employee) interface{} { return e.Phone },
	"department": func(e *Employee) interface{} { return e.Department },
	"position":   func(e *Employee) interface{} { return e.Position },
	"location":   func(e *Employee) interface{} { return e.Location },
	"status":     func(e *Employee) interface{} { return e.Status },
	"hire_date":  func(e *Employee) interface{} { return e.HireDate.Format("2006-01-02") },
}

// Project reduces an employee to the fields a tenant has made visible.
// id is always included; full_name appears only when both name parts are
// visible; unrecognized keys are ignored.
func Project(e *Employee, visibleColumns []string) map[string]interface{} {
	out := map[string]interface{}{
		"id": e.ID,
	}

	firstVisible := false
	lastVisible := false
	for _, key := range visibleColumns {
		accessor, ok := fieldAccessors[key]
		if !ok {
			continue
		}
		out[key] = accessor(e)

		switch key {
		case "first_name":
			firstVisible = true
		case "last_name":
			lastVisible = true
		}
	}

	if firstVisible && lastVisible {
		out["full_name"] = e.FullName()
	}

	return out
}
