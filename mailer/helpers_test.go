package mailer

import "restaurant-ordering-api/config"

func configWithHost(host string) config.SMTPConfig {
	return config.SMTPConfig{
		Host: host,
		Port: "587",
		From: "reservas@restaurant.local",
	}
}
