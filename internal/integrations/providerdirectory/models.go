package providerdirectory

// Provider модель врача из справочника клиники
type Provider struct {
	ID        int64  `json:"id"`
	ClinicID  int64  `json:"clinic_id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	IsActive  bool   `json:"is_active"`
}

// ErrorResponse модель ошибки от справочника
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
