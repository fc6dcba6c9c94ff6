// @title           auto-contract API
// @version         1.0
// @description     AI-assisted Korean contract drafting service. Authenticate with a Personal Access Token.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerToken
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and your API token. Example: "Bearer acb_xxx"
package api
