package config

import "github.com/spf13/viper"

// Config holds everything the application reads from the environment.
// It is built once in main and handed to the components that need it.
type Config struct {
	ServerAddr    string
	DatabasePath  string
	SessionCookie string
	SessionSecret string
	AdminUserID   uint
	Debug         bool

	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPassword     string
	ContactRecipient string
}

func Load() *Config {
	v := viper.New()
	v.SetDefault("SERVER_ADDR", ":6835")
	v.SetDefault("DATABASE_PATH", "blog.db")
	v.SetDefault("SESSION_COOKIE", "authenticated_user_token")
	v.SetDefault("SESSION_SECRET", "change-me")
	v.SetDefault("ADMIN_USER_ID", 1)
	v.SetDefault("DEBUG", false)
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("CONTACT_RECIPIENT", "midnamic912@gmail.com")
	v.AutomaticEnv()

	return &Config{
		ServerAddr:    v.GetString("SERVER_ADDR"),
		DatabasePath:  v.GetString("DATABASE_PATH"),
		SessionCookie: v.GetString("SESSION_COOKIE"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		AdminUserID:   v.GetUint("ADMIN_USER_ID"),
		Debug:         v.GetBool("DEBUG"),

		SMTPHost:         v.GetString("SMTP_HOST"),
		SMTPPort:         v.GetInt("SMTP_PORT"),
		SMTPUser:         v.GetString("SMTP_USER"),
		SMTPPassword:     v.GetString("SMTP_PASSWORD"),
		ContactRecipient: v.GetString("CONTACT_RECIPIENT"),
	}
}
