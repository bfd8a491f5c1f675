package templates

// WelcomeData is the payload of the welcome template.
type WelcomeData struct {
	Name    string `json:"Name"`
	Email   string `json:"Email"`
	AppName string `json:"AppName"`
	AppURL  string `json:"AppURL"`
}

// ToMap flattens WelcomeData into EmailJob.Data.
func (d WelcomeData) ToMap() map[string]any {
	return map[string]any{
		"Name":    d.Name,
		"Email":   d.Email,
		"AppName": d.AppName,
		"AppURL":  d.AppURL,
	}
}
