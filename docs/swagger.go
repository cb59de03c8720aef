package docs

// @title           Uber Clone Simulated Backend API
// @version         1.0
// @description     Simulated ride-booking backend: authentication, location, ride catalog with fan-out price estimates, booking, and ride history. All downstream calls resolve after fixed delays with hard-coded data.

// @host      localhost:3000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
