package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		EncryptionKey           string   `json:"encryption_key"`
		RecaptchaSecret         string   `json:"recaptcha_secret_key"`
		AdminUsername           string   `json:"admin_username"`
		AdminPasswordHash       string   `json:"admin_password_hash"`
		SecondAdminUsername     string   `json:"second_admin_username"`
		SecondAdminPasswordHash string   `json:"second_admin_password_hash"`
		SessionIdleTimeout      Duration `json:"session_idle_timeout"`
		LockoutThreshold        int      `json:"lockout_threshold"`
		LockoutWindow           Duration `json:"lockout_window"`
		BlockThreshold          int      `json:"block_threshold"`
		FailureDelay            Duration `json:"failure_delay"`
		DashboardPageSize       int      `json:"dashboard_page_size"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		Host           string   `json:"smtp_host"`
		Port           int      `json:"smtp_port"`
		Username       string   `json:"username"`
		Password       string   `json:"password"`
		SenderEmail    string   `json:"sender_email"`
		SenderName     string   `json:"sender_name"`
		RecipientEmail string   `json:"recipient_email"`
		RecipientName  string   `json:"recipient_name"`
		ReplyToEmail   string   `json:"reply_to_email"`
		ReplyToName    string   `json:"reply_to_name"`
		SendTimeout    Duration `json:"send_timeout"`
	} `json:"mail,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			EncryptionKey:           jsonCfg.App.EncryptionKey,
			RecaptchaSecret:         jsonCfg.App.RecaptchaSecret,
			AdminUsername:           jsonCfg.App.AdminUsername,
			AdminPasswordHash:       jsonCfg.App.AdminPasswordHash,
			SecondAdminUsername:     jsonCfg.App.SecondAdminUsername,
			SecondAdminPasswordHash: jsonCfg.App.SecondAdminPasswordHash,
			SessionIdleTimeout:      time.Duration(jsonCfg.App.SessionIdleTimeout),
			LockoutThreshold:        jsonCfg.App.LockoutThreshold,
			LockoutWindow:           time.Duration(jsonCfg.App.LockoutWindow),
			BlockThreshold:          jsonCfg.App.BlockThreshold,
			FailureDelay:            time.Duration(jsonCfg.App.FailureDelay),
			DashboardPageSize:       jsonCfg.App.DashboardPageSize,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mail: Mail{
			Host:           jsonCfg.Mail.Host,
			Port:           jsonCfg.Mail.Port,
			Username:       jsonCfg.Mail.Username,
			Password:       jsonCfg.Mail.Password,
			SenderEmail:    jsonCfg.Mail.SenderEmail,
			SenderName:     jsonCfg.Mail.SenderName,
			RecipientEmail: jsonCfg.Mail.RecipientEmail,
			RecipientName:  jsonCfg.Mail.RecipientName,
			ReplyToEmail:   jsonCfg.Mail.ReplyToEmail,
			ReplyToName:    jsonCfg.Mail.ReplyToName,
			SendTimeout:    time.Duration(jsonCfg.Mail.SendTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
