package content

// Descriptor is a typed piece of content that can be turned into a QR payload.
// The set of implementations is closed: URL, Text, WiFi, VCard, Email, Phone and SMS.
// Optional string fields are treated as absent when empty.
type Descriptor interface {
	Type() Type
	isDescriptor()
}

type URL struct {
	URL string `json:"url"`
}

type Text struct {
	Text string `json:"text"`
}

type WiFi struct {
	SSID       string     `json:"ssid"`
	Password   string     `json:"password"`
	Encryption Encryption `json:"encryption"`
	Hidden     bool       `json:"hidden"`
}

type VCard struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Organization string `json:"organization,omitempty"`
	Title        string `json:"title,omitempty"`
	URL          string `json:"url,omitempty"`
}

type Email struct {
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}

type Phone struct {
	Phone string `json:"phone"`
}

type SMS struct {
	Phone   string `json:"phone"`
	Message string `json:"message,omitempty"`
}

func (URL) Type() Type   { return TypeURL }
func (Text) Type() Type  { return TypeText }
func (WiFi) Type() Type  { return TypeWiFi }
func (VCard) Type() Type { return TypeVCard }
func (Email) Type() Type { return TypeEmail }
func (Phone) Type() Type { return TypePhone }
func (SMS) Type() Type   { return TypeSMS }

func (URL) isDescriptor()   {}
func (Text) isDescriptor()  {}
func (WiFi) isDescriptor()  {}
func (VCard) isDescriptor() {}
func (Email) isDescriptor() {}
func (Phone) isDescriptor() {}
func (SMS) isDescriptor()   {}
