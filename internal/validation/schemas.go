package validation

import (
	"regexp"
	"strings"

	"github.com/viewlist/viewlist-api/internal/domain/entity"
)

var (
	gstPattern     = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	phonePattern   = regexp.MustCompile(`^(\+\d{2}[0-9]{10}|[0-9]{10})$`)
	pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

var statusEnum = []string{"active", "inactive"}

func companyFields() []Field {
	return []Field{
		{
			Name: "name", Required: true, MinLen: 2, MaxLen: 100,
			Messages: Messages{
				Min:      "Company name must be at least 2 characters long",
				Max:      "Company name must not exceed 100 characters",
				Required: "Company name is required",
			},
		},
		{
			Name: "gstNo", Required: true, Pattern: gstPattern,
			Messages: Messages{
				Pattern: "GST number must be in valid format (e.g., 27ABCDE1234F1Z5)",
			},
		},
		{
			Name: "email", Email: true, MaxLen: 100,
			Messages: Messages{
				Email: "Please provide a valid email address",
				Max:   "Email must not exceed 100 characters",
			},
		},
		{
			Name: "phone", Pattern: phonePattern, MaxLen: 13,
			Messages: Messages{
				Pattern: "Please provide a valid phone number",
			},
		},
		{
			Name: "address", Required: true, MaxLen: 500,
			Messages: Messages{
				Max: "Address must not exceed 500 characters",
			},
		},
		{
			Name: "city", Required: true, MinLen: 2, MaxLen: 50,
			Messages: Messages{
				Min: "City must be at least 2 characters long",
				Max: "City must not exceed 50 characters",
			},
		},
		{
			Name: "state", Required: true, MinLen: 2, MaxLen: 50,
			Messages: Messages{
				Min: "State must be at least 2 characters long",
				Max: "State must not exceed 50 characters",
			},
		},
		{
			Name: "pincode", Required: true, Pattern: pincodePattern,
			Messages: Messages{
				Pattern: "Pincode must be a valid 6-digit Indian postal code",
			},
		},
		{
			Name: "status", Required: true, Enum: statusEnum,
			Messages: Messages{
				Enum: "Status must be either active or inactive",
			},
		},
	}
}

// CompanyCreate validates POST /company bodies.
var CompanyCreate = &Schema{Fields: companyFields()}

// CompanyUpdate validates PUT /company/:id bodies. Same rules as create,
// but at least one field must be present.
var CompanyUpdate = &Schema{
	Fields:           companyFields(),
	MinFields:        1,
	MinFieldsMessage: "At least one field must be provided for update",
}

// ItemCreate validates POST /item bodies.
var ItemCreate = &Schema{
	Fields: []Field{
		{
			Name: "name", Required: true, MinLen: 2, MaxLen: 100,
			Messages: Messages{
				Min:      "Item name must be at least 2 characters long",
				Max:      "Item name must not exceed 100 characters",
				Required: "Item name is required",
			},
		},
		{
			Name: "description", MaxLen: 500,
			Messages: Messages{
				Max: "Description must not exceed 500 characters",
			},
		},
		{
			Name: "hsnCode", Required: true, MinLen: 2, MaxLen: 10,
			Messages: Messages{
				Min:      "HSN code must be at least 2 characters long",
				Max:      "HSN code must not exceed 10 characters",
				Required: "HSN code is required",
			},
		},
		{
			Name: "status", Required: true, Enum: statusEnum,
			Messages: Messages{
				Enum: "Status must be either active or inactive",
			},
		},
	},
}

// ItemUpdate validates PUT /item/:id bodies. Name stays required;
// everything else is optional.
var ItemUpdate = &Schema{
	Fields: []Field{
		{
			Name: "name", Required: true, MinLen: 2, MaxLen: 100,
			Messages: Messages{
				Min: "Item name must be at least 2 characters long",
				Max: "Item name must not exceed 100 characters",
			},
		},
		{
			Name: "description", MaxLen: 500,
			Messages: Messages{
				Max: "Description must not exceed 500 characters",
			},
		},
		{
			Name: "hsnCode", MinLen: 2, MaxLen: 10,
			Messages: Messages{
				Min: "HSN code must be at least 2 characters long",
				Max: "HSN code must not exceed 10 characters",
			},
		},
		{
			Name: "status", Enum: statusEnum,
			Messages: Messages{
				Enum: "Status must be either active or inactive",
			},
		},
	},
	MinFields:        1,
	MinFieldsMessage: "At least one field must be provided for update",
}

var unitEnumMessage = "Unit must be one of " + strings.Join(entity.Units, ", ")

// SalesCreate validates POST /sales bodies.
var SalesCreate = &Schema{
	Fields: []Field{
		{
			Name: "companyId", Required: true,
			Messages: Messages{
				Required: "Company ID is required",
				Empty:    "Company ID cannot be empty",
			},
		},
		{
			Name: "itemId", Required: true,
			Messages: Messages{
				Required: "Item ID is required",
				Empty:    "Item ID cannot be empty",
			},
		},
		{
			Name: "unit", Required: true, Enum: entity.Units,
			Messages: Messages{
				Required: "Unit is required",
				Enum:     unitEnumMessage,
			},
		},
	},
}

// SalesUpdate validates PUT /sales/:id bodies. All fields optional, at
// least one required.
var SalesUpdate = &Schema{
	Fields: []Field{
		{Name: "companyId"},
		{Name: "itemId"},
		{
			Name: "unit", Enum: entity.Units,
			Messages: Messages{
				Enum: unitEnumMessage,
			},
		},
	},
	MinFields:        1,
	MinFieldsMessage: "At least one field must be provided for update",
}

// UserRegister validates POST /auth/register bodies.
var UserRegister = &Schema{
	Fields: []Field{
		{
			Name: "name", Required: true, MinLen: 2, MaxLen: 100,
			Messages: Messages{
				Min:      "Name must be at least 2 characters long",
				Max:      "Name must not exceed 100 characters",
				Empty:    "Name cannot be empty",
				Required: "Name is required",
			},
		},
		{
			Name: "email", Required: true, Email: true,
			Messages: Messages{
				Email:    "Please provide a valid email address",
				Empty:    "Email cannot be empty",
				Required: "Email is required",
			},
		},
		{
			Name: "password", Required: true, MinLen: 6, MaxLen: 128,
			Messages: Messages{
				Min:      "Password must be at least 6 characters long",
				Max:      "Password must not exceed 128 characters",
				Empty:    "Password cannot be empty",
				Required: "Password is required",
			},
		},
	},
}

// UserLogin validates POST /auth/login bodies.
var UserLogin = &Schema{
	Fields: []Field{
		{
			Name: "email", Required: true, Email: true,
			Messages: Messages{
				Email:    "Please provide a valid email address",
				Empty:    "Email cannot be empty",
				Required: "Email is required",
			},
		},
		{
			Name: "password", Required: true,
			Messages: Messages{
				Empty:    "Password cannot be empty",
				Required: "Password is required",
			},
		},
	},
}

// UserUpdateProfile validates PUT /auth/profile bodies (name only).
var UserUpdateProfile = &Schema{
	Fields: []Field{
		{
			Name: "name", Required: true, MinLen: 2, MaxLen: 100,
			Messages: Messages{
				Min:      "Name must be at least 2 characters long",
				Max:      "Name must not exceed 100 characters",
				Empty:    "Name cannot be empty",
				Required: "Name is required",
			},
		},
	},
}

// UserChangePassword validates PUT /auth/change-password bodies.
var UserChangePassword = &Schema{
	Fields: []Field{
		{
			Name: "currentPassword", Required: true,
			Messages: Messages{
				Empty:    "Current password cannot be empty",
				Required: "Current password is required",
			},
		},
		{
			Name: "newPassword", Required: true, MinLen: 6, MaxLen: 128,
			Messages: Messages{
				Min:      "New password must be at least 6 characters long",
				Max:      "New password must not exceed 128 characters",
				Empty:    "New password cannot be empty",
				Required: "New password is required",
			},
		},
	},
}
