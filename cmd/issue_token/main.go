// issue_token emite un JWT de desarrollo con el companyId indicado, firmado con JWT_SECRET.
// En producción los tokens los emite el servicio de autenticación.
//
// Uso: go run ./cmd/issue_token -company 7 [-sub usuario] [-exp 60]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/categorias-api/pkg/config"
	"github.com/jhoicas/categorias-api/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	companyID := flag.Int64("company", 0, "companyId del tenant (obligatorio, > 0)")
	subject := flag.String("sub", "dev", "claim sub")
	expMinutes := flag.Int("exp", cfg.JWT.Expiration, "minutos de validez")
	flag.Parse()

	if *companyID <= 0 {
		fmt.Fprintln(os.Stderr, "-company debe ser un entero positivo")
		os.Exit(2)
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *companyID, *subject, cfg.JWT.Issuer, *expMinutes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
