package service

import (
	"github.com/techflow-dev/techflow/internal/domain"
	"github.com/techflow-dev/techflow/internal/report"
)

type ReportService interface {
	Users(departmentId domain.DepartmentId) (Export, error)
	Providers(departmentId domain.DepartmentId) (Export, error)
	Stations(departmentId domain.DepartmentId) (Export, error)
	Supplies(departmentId domain.DepartmentId) (Export, error)
}

// Export is a rendered workbook ready to be served as an attachment.
type Export struct {
	Filename string
	Data     []byte
}

type ReportStorage interface {
	UsersByDepartment(departmentId domain.DepartmentId) ([]domain.User, error)
	ProvidersByDepartment(departmentId domain.DepartmentId) ([]domain.Provider, error)
	StationsByDepartment(departmentId domain.DepartmentId, filter domain.StationFilter) ([]domain.ComStation, error)
	SuppliesByDepartment(departmentId domain.DepartmentId) ([]domain.Supply, error)
}

type Report struct {
	storage ReportStorage
}

func NewReport(storage ReportStorage) *Report {
	return &Report{storage: storage}
}

func (s *Report) Users(departmentId domain.DepartmentId) (Export, error) {
	users, err := s.storage.UsersByDepartment(departmentId)
	if err != nil {
		return Export{}, err
	}

	sheet := report.Sheet{
		Name:    "Team Members Report",
		Headers: []string{"Name", "Email", "Phone", "Pager"},
		Widths:  []float64{30, 40, 20, 20},
	}
	for _, u := range users {
		sheet.Rows = append(sheet.Rows, []any{
			u.Name, u.Email, report.OrNA(u.PhoneNumber), report.OrNA(u.PagerNumber),
		})
	}
	return render("team_members_report.xlsx", sheet)
}

func (s *Report) Providers(departmentId domain.DepartmentId) (Export, error) {
	providers, err := s.storage.ProvidersByDepartment(departmentId)
	if err != nil {
		return Export{}, err
	}

	sheet := report.Sheet{
		Name:    "Reading Providers Report",
		Headers: []string{"Provider", "Email", "Phone", "Pager", "Office"},
		Widths:  []float64{30, 40, 20, 20, 20},
	}
	for _, p := range providers {
		sheet.Rows = append(sheet.Rows, []any{
			p.Name, report.OrNA(p.Email), report.OrNA(p.PhoneNumber),
			report.OrNA(p.PagerNumber), report.OrNA(p.OfficeNumber),
		})
	}
	return render("reading_providers_report.xlsx", sheet)
}

func (s *Report) Stations(departmentId domain.DepartmentId) (Export, error) {
	stations, err := s.storage.StationsByDepartment(departmentId, domain.StationFilter{})
	if err != nil {
		return Export{}, err
	}

	sheet := report.Sheet{
		Name:    "Computer Stations Report",
		Headers: []string{"Computer Station", "Location", "Type", "Status", "Issue", "Ticket?", "Ticket Number"},
		Widths:  []float64{20, 15, 15, 15, 30, 10, 20},
	}
	for _, st := range stations {
		ticket := "No"
		if st.HasTicket {
			ticket = "Yes"
		}
		sheet.Rows = append(sheet.Rows, []any{
			st.Name, st.Location, st.Type, st.Status,
			report.OrNA(st.IssueDescription), ticket, report.OrNA(st.TicketNumber),
		})
	}
	return render("computer_stations.xlsx", sheet)
}

// Supplies lays rooms out as columns, one item per row, mirroring how
// the dashboard prints packing lists.
func (s *Report) Supplies(departmentId domain.DepartmentId) (Export, error) {
	supplies, err := s.storage.SuppliesByDepartment(departmentId)
	if err != nil {
		return Export{}, err
	}

	byRoom := make(map[string][]string, len(supplies))
	maxItems := 0
	for _, sup := range supplies {
		byRoom[sup.StorageRoom] = sup.Items
		if len(sup.Items) > maxItems {
			maxItems = len(sup.Items)
		}
	}

	sheet := report.Sheet{
		Name:    "Needed Supplies Report",
		Headers: domain.StorageRooms,
		Widths:  make([]float64, len(domain.StorageRooms)),
	}
	for i := range sheet.Widths {
		sheet.Widths[i] = 30
	}
	for i := 0; i < maxItems; i++ {
		row := make([]any, len(domain.StorageRooms))
		for col, room := range domain.StorageRooms {
			items := byRoom[room]
			if i < len(items) {
				row[col] = items[i]
			} else {
				row[col] = ""
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return render("needed_supplies.xlsx", sheet)
}

func render(filename string, sheet report.Sheet) (Export, error) {
	data, err := report.Build(sheet)
	if err != nil {
		return Export{}, err
	}
	return Export{Filename: filename, Data: data}, nil
}
