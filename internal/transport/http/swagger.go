package http

import (
	"net/http"
	"os"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/azerguest/azerguest-api/internal/util"
)

// DefaultSwaggerSpec is the OpenAPI document served when no path is configured.
const DefaultSwaggerSpec = "docs/swagger.yaml"

// RegisterSwagger serves the YAML spec at specPath as JSON and mounts the
// Swagger UI under /swagger. The file is read per request so edits show up
// without a restart.
func RegisterSwagger(e *echo.Echo, specPath string) {
	if specPath == "" {
		specPath = DefaultSwaggerSpec
	}
	e.GET("/swagger/doc.json", func(c echo.Context) error {
		data, err := os.ReadFile(specPath)
		if err != nil {
			c.Logger().Errorf("load swagger spec: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to load swagger spec"))
		}
		jsonSpec, err := yaml.YAMLToJSON(data)
		if err != nil {
			c.Logger().Errorf("convert swagger spec: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to parse swagger spec"))
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, jsonSpec)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
