// Package dto holds the JSON request bodies accepted by the handlers.
package dto

// LoginRequest is the body of POST /api/v1/user/login. SecretKey is only
// read when role is "admin".
type LoginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	SecretKey string `json:"secretKey"`
}

// CompanyRegisterRequest is the body of POST /api/v1/company/register.
type CompanyRegisterRequest struct {
	CompanyName string `json:"companyName"`
}

// JobRequest is the body of POST /api/v1/job/post. Requirements arrive as a
// comma-separated string, matching the frontend form.
type JobRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Requirements    string `json:"requirements"`
	Salary          int64  `json:"salary"`
	Location        string `json:"location"`
	JobType         string `json:"jobType"`
	ExperienceLevel int    `json:"experience"`
	Position        int    `json:"position"`
	CompanyID       string `json:"companyId"`
}

// StatusUpdateRequest is the body of POST /api/v1/application/status/{id}/update.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// ProgressUpdateRequest is the body of POST /api/v1/application/progress/{id}/update.
type ProgressUpdateRequest struct {
	Progress string `json:"progress"`
}

// PaymentValidationRequest is the callback body of POST /order/validate.
// Field names follow the provider's checkout payload.
type PaymentValidationRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}
