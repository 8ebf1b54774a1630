package registration

// Gender is one of the enumerated gender tokens accepted by the form.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists the accepted tokens in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// Field names as used in form keys, JSON keys and error maps.
const (
	FieldName            = "name"
	FieldAge             = "age"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldPhone           = "phone"
	FieldGender          = "gender"
)

// Fields lists every record field in declaration order.
var Fields = []string{
	FieldName,
	FieldAge,
	FieldEmail,
	FieldPassword,
	FieldConfirmPassword,
	FieldPhone,
	FieldGender,
}

// Record is the candidate registration data under validation. Every field is
// always present; values the user has not entered yet are zero values.
type Record struct {
	Name            string `json:"name" form:"name"`
	Age             int    `json:"age" form:"age"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
	Phone           string `json:"phone" form:"phone"`
	Gender          Gender `json:"gender" form:"gender"`
}

// NewRecord returns an empty record with the form's initial selection.
func NewRecord() Record {
	return Record{Gender: GenderMale}
}
