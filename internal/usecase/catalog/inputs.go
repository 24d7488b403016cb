package catalog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// -- Doctor --

type DoctorInput struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

func (in DoctorInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validators.NameRules...),
		validation.Field(&in.Specialty, validators.NameRules...),
	)
}

type DoctorUpdate struct {
	Name      *string `json:"name"`
	Specialty *string `json:"specialty"`
}

func (in DoctorUpdate) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&in.Specialty, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}

func (in DoctorUpdate) Apply(d *models.Doctor) {
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Specialty != nil {
		d.Specialty = *in.Specialty
	}
}

// -- Clinic --

type ClinicInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (in ClinicInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validators.NameRules...),
		validation.Field(&in.Address, validation.Required, validation.Length(1, 255)),
		validation.Field(&in.Phone, validators.PhoneRules...),
	)
}

type ClinicUpdate struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

func (in ClinicUpdate) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&in.Address, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&in.Phone, validation.NilOrNotEmpty, validation.Length(3, 20)),
	)
}

func (in ClinicUpdate) Apply(c *models.Clinic) {
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
}
