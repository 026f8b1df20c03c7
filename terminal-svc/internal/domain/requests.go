package domain

import (
	"net/mail"
	"net/url"
	"sort"
	"strings"
	"unicode/utf8"
)

// ValidationErrors maps a form field to its message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns nil when there are no field errors.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

type ItemPayload struct {
	FoodID   int `json:"food_id"`
	Quantity int `json:"quantity"`
}

type CreateOrderRequest struct {
	TableID int           `json:"table_id"`
	Items   []ItemPayload `json:"items,omitempty"`
}

func (r CreateOrderRequest) Validate() error {
	errs := ValidationErrors{}
	if r.TableID <= 0 {
		errs["table_id"] = "Meja wajib dipilih"
	}
	validateItems(r.Items, errs)
	return errs.Err()
}

type AddItemsRequest struct {
	Items []ItemPayload `json:"items"`
}

func (r AddItemsRequest) Validate() error {
	errs := ValidationErrors{}
	if len(r.Items) == 0 {
		errs["items"] = "Item pesanan wajib diisi"
	}
	validateItems(r.Items, errs)
	return errs.Err()
}

func validateItems(items []ItemPayload, errs ValidationErrors) {
	for _, it := range items {
		if it.FoodID <= 0 || it.Quantity < 1 {
			errs["items"] = "Item pesanan tidak valid"
			return
		}
	}
}

type CreateFoodRequest struct {
	Name     string       `json:"name"`
	Category FoodCategory `json:"category"`
	Price    Money        `json:"price"`
	Image    string       `json:"image,omitempty"`
}

func (r CreateFoodRequest) Validate() error {
	errs := ValidationErrors{}
	validateFoodName(r.Name, errs)
	if r.Category == "" {
		errs["category"] = "Kategori wajib dipilih"
	} else if !r.Category.Valid() {
		errs["category"] = "Kategori tidak valid"
	}
	if r.Price < 0 {
		errs["price"] = "Harga harus lebih dari 0"
	}
	validateImage(r.Image, errs)
	return errs.Err()
}

// UpdateFoodRequest carries only the fields being changed.
type UpdateFoodRequest struct {
	Name     *string       `json:"name,omitempty"`
	Category *FoodCategory `json:"category,omitempty"`
	Price    *Money        `json:"price,omitempty"`
	Image    *string       `json:"image,omitempty"`
}

func (r UpdateFoodRequest) Validate() error {
	errs := ValidationErrors{}
	if r.Name != nil {
		validateFoodName(*r.Name, errs)
	}
	if r.Category != nil && !r.Category.Valid() {
		errs["category"] = "Kategori tidak valid"
	}
	if r.Price != nil && *r.Price < 0 {
		errs["price"] = "Harga harus lebih dari 0"
	}
	if r.Image != nil {
		validateImage(*r.Image, errs)
	}
	return errs.Err()
}

func validateFoodName(name string, errs ValidationErrors) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		errs["name"] = "Nama makanan wajib diisi"
	case utf8.RuneCountInString(name) < 3:
		errs["name"] = "Nama minimal 3 karakter"
	}
}

func validateImage(image string, errs ValidationErrors) {
	if image == "" {
		return
	}
	u, err := url.ParseRequestURI(image)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs["image"] = "Format URL tidak valid"
	}
}

type UpdateTableStatusRequest struct {
	Status TableStatus `json:"status"`
}

func (r UpdateTableStatusRequest) Validate() error {
	switch r.Status {
	case TableAvailable, TableReserved, TableInactive:
		return nil
	}
	return ValidationErrors{"status": "Status meja tidak valid"}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return ValidationErrors{"credentials": "Email dan password wajib diisi"}
	}
	return nil
}

type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Role                 Role   `json:"role"`
}

func (r RegisterRequest) Validate() error {
	errs := ValidationErrors{}
	switch name := strings.TrimSpace(r.Name); {
	case name == "":
		errs["name"] = "Nama wajib diisi"
	case utf8.RuneCountInString(name) < 3:
		errs["name"] = "Nama minimal 3 karakter"
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "Email wajib diisi"
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs["email"] = "Email tidak valid"
	}
	switch {
	case r.Password == "":
		errs["password"] = "Password wajib diisi"
	case len(r.Password) < 6:
		errs["password"] = "Password minimal 6 karakter"
	}
	switch {
	case r.PasswordConfirmation == "":
		errs["password_confirmation"] = "Konfirmasi password wajib diisi"
	case r.PasswordConfirmation != r.Password:
		errs["password_confirmation"] = "Password tidak cocok"
	}
	switch r.Role {
	case "":
		errs["role"] = "Role wajib dipilih"
	case RoleWaiter, RoleCashier:
	default:
		errs["role"] = "Role tidak valid"
	}
	return errs.Err()
}

type AuthResponse struct {
	Token   string `json:"token"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}
