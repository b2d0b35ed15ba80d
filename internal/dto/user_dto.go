package dto

type SignupUserRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	UserName      string `json:"userName"`
	EmailAddress  string `json:"emailAddress"`
	Password      string `json:"password"`
	Country       string `json:"country"`
	AboutMe       string `json:"aboutMe"`
	Dob           string `json:"dob"`
	ContactNumber string `json:"contactNumber"`
}

type SignupUserResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SigninResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type SignoutResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type UserDetailsResponse struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	UserName      string `json:"userName"`
	EmailAddress  string `json:"emailAddress"`
	Country       string `json:"country"`
	AboutMe       string `json:"aboutMe"`
	Dob           string `json:"dob"`
	ContactNumber string `json:"contactNumber"`
}

type UserDeleteResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
