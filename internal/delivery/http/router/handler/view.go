package handler

import (
	"time"

	"tavolo/internal/domain/entity"
	"tavolo/internal/domain/repository"
)

// View types are the outward JSON shapes of the domain entities. Mapping here
// keeps credential and billing fields from ever reaching a response body.

type memberView struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Kana        string    `json:"kana"`
	PostalCode  string    `json:"postal_code"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phone_number"`
	Birthday    string    `json:"birthday,omitempty"`
	Occupation  string    `json:"occupation,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toMemberView(m *entity.Member) memberView {
	return memberView{
		ID:          m.ID.String(),
		Email:       m.Email,
		Name:        m.Name,
		Kana:        m.Kana,
		PostalCode:  m.PostalCode,
		Address:     m.Address,
		PhoneNumber: m.PhoneNumber,
		Birthday:    m.Birthday,
		Occupation:  m.Occupation,
		CreatedAt:   m.CreatedAt,
	}
}

type categoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toCategoryView(c *entity.Category) categoryView {
	return categoryView{ID: c.ID.String(), Name: c.Name}
}

func toCategoryViews(categories []*entity.Category) []categoryView {
	views := make([]categoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, toCategoryView(c))
	}

	return views
}

type regularHolidayView struct {
	ID  string `json:"id"`
	Day string `json:"day"`
}

func toRegularHolidayViews(holidays []*entity.RegularHoliday) []regularHolidayView {
	views := make([]regularHolidayView, 0, len(holidays))
	for _, h := range holidays {
		views = append(views, regularHolidayView{ID: h.ID.String(), Day: h.Day})
	}

	return views
}

type restaurantView struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	ImagePath       string               `json:"image_path,omitempty"`
	Description     string               `json:"description"`
	LowestPrice     int                  `json:"lowest_price"`
	HighestPrice    int                  `json:"highest_price"`
	PostalCode      string               `json:"postal_code"`
	Address         string               `json:"address"`
	OpeningTime     string               `json:"opening_time"`
	ClosingTime     string               `json:"closing_time"`
	SeatingCapacity int                  `json:"seating_capacity"`
	AverageScore    float64              `json:"average_score"`
	Categories      []categoryView       `json:"categories,omitempty"`
	RegularHolidays []regularHolidayView `json:"regular_holidays,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

func toRestaurantView(r *entity.Restaurant) restaurantView {
	return restaurantView{
		ID:              r.ID.String(),
		Name:            r.Name,
		ImagePath:       r.ImagePath,
		Description:     r.Description,
		LowestPrice:     r.LowestPrice,
		HighestPrice:    r.HighestPrice,
		PostalCode:      r.PostalCode,
		Address:         r.Address,
		OpeningTime:     r.OpeningTime,
		ClosingTime:     r.ClosingTime,
		SeatingCapacity: r.SeatingCapacity,
		AverageScore:    r.AverageScore,
		Categories:      toCategoryViews(r.Categories),
		RegularHolidays: toRegularHolidayViews(r.RegularHolidays),
		CreatedAt:       r.CreatedAt,
	}
}

func toRestaurantViews(restaurants []*entity.Restaurant) []restaurantView {
	views := make([]restaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, toRestaurantView(r))
	}

	return views
}

type reservationView struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurant_id"`
	ReservedAt   time.Time       `json:"reserved_at"`
	PartySize    int             `json:"party_size"`
	Restaurant   *restaurantView `json:"restaurant,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toReservationView(r *entity.Reservation) reservationView {
	view := reservationView{
		ID:           r.ID.String(),
		RestaurantID: r.RestaurantID.String(),
		ReservedAt:   r.ReservedAt,
		PartySize:    r.PartySize,
		CreatedAt:    r.CreatedAt,
	}
	if r.Restaurant != nil {
		restaurant := toRestaurantView(r.Restaurant)
		view.Restaurant = &restaurant
	}

	return view
}

type reviewView struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	MemberID     string    `json:"member_id"`
	MemberName   string    `json:"member_name,omitempty"`
	Score        int       `json:"score"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

func toReviewView(r *entity.Review) reviewView {
	view := reviewView{
		ID:           r.ID.String(),
		RestaurantID: r.RestaurantID.String(),
		MemberID:     r.MemberID.String(),
		Score:        r.Score,
		Content:      r.Content,
		CreatedAt:    r.CreatedAt,
	}
	if r.Member != nil {
		view.MemberName = r.Member.Name
	}

	return view
}

type companyView struct {
	Name           string `json:"name"`
	PostalCode     string `json:"postal_code"`
	Address        string `json:"address"`
	Representative string `json:"representative"`
	EstablishedAt  string `json:"established_at"`
	Capital        string `json:"capital"`
	Business       string `json:"business"`
	EmployeeCount  string `json:"employee_count"`
}

func toCompanyView(c *entity.Company) companyView {
	return companyView{
		Name:           c.Name,
		PostalCode:     c.PostalCode,
		Address:        c.Address,
		Representative: c.Representative,
		EstablishedAt:  c.EstablishedAt,
		Capital:        c.Capital,
		Business:       c.Business,
		EmployeeCount:  c.EmployeeCount,
	}
}

type termView struct {
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toTermView(t *entity.Term) termView {
	return termView{Content: t.Content, UpdatedAt: t.UpdatedAt}
}

// mapPage converts a page of entities into a page of views, preserving the
// pagination envelope.
func mapPage[T, U any](page *repository.Page[T], mapItem func(T) U) *repository.Page[U] {
	items := make([]U, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, mapItem(item))
	}

	return &repository.Page[U]{
		Items:   items,
		Total:   page.Total,
		Page:    page.Page,
		PerPage: page.PerPage,
	}
}
