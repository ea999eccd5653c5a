package redirect

type input struct {
	Code         string `path:"code" example:"Ab12Cd34" doc:"Short code printed in the QR symbol"`
	ForwardedFor string `header:"X-Forwarded-For"`
	RealIP       string `header:"X-Real-IP"`
	UserAgent    string `header:"User-Agent"`
	Referer      string `header:"Referer"`
}

type output struct {
	Status       int
	Location     string `header:"Location"`
	CacheControl string `header:"Cache-Control"`
}
