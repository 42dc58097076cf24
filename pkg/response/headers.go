package response

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sondong-edu/school-admin-api/internal/models"
)

const HeaderTotalCount = "X-Total-Count"

// AlertHeader returns the alert header name for app.
func AlertHeader(app string) string { return "X-" + app + "-alert" }

// ErrorHeader returns the failure header name for app.
func ErrorHeader(app string) string { return "X-" + app + "-error" }

// ParamsHeader returns the alert parameter header name for app.
func ParamsHeader(app string) string { return "X-" + app + "-params" }

// Alert sets a raw alert message and its parameter.
func Alert(c *gin.Context, app, message, param string) {
	c.Header(AlertHeader(app), message)
	c.Header(ParamsHeader(app), param)
}

// EntityCreated emits "<app>.<entity>.created".
func EntityCreated(c *gin.Context, app, entity, param string) {
	Alert(c, app, app+"."+entity+".created", param)
}

// EntityUpdated emits "<app>.<entity>.updated".
func EntityUpdated(c *gin.Context, app, entity, param string) {
	Alert(c, app, app+"."+entity+".updated", param)
}

// EntityDeleted emits "<app>.<entity>.deleted".
func EntityDeleted(c *gin.Context, app, entity, param string) {
	Alert(c, app, app+"."+entity+".deleted", param)
}

// FailureAlert emits "error.<errorKey>" with the entity name as parameter.
func FailureAlert(c *gin.Context, app, entity, errorKey string) {
	c.Header(ErrorHeader(app), "error."+errorKey)
	c.Header(ParamsHeader(app), entity)
}

// PaginationHeaders sets X-Total-Count and the Link header for the page
// described by p. base is the collection URL without query parameters.
func PaginationHeaders(c *gin.Context, base string, p *models.Pagination) {
	if p == nil {
		return
	}
	c.Header(HeaderTotalCount, strconv.Itoa(p.TotalCount))
	c.Header("Link", LinkHeader(base, p))
}

// LinkHeader renders next, prev, last and first links in that order.
func LinkHeader(base string, p *models.Pagination) string {
	var links []string
	if p.HasNext() {
		links = append(links, link(base, p.Page+1, p.PageSize, "next"))
	}
	if p.Page > 0 {
		links = append(links, link(base, p.Page-1, p.PageSize, "prev"))
	}
	links = append(links,
		link(base, p.LastPage(), p.PageSize, "last"),
		link(base, 0, p.PageSize, "first"),
	)
	return strings.Join(links, ",")
}

func link(base string, page, size int, rel string) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return fmt.Sprintf("<%s?%s>; rel=%q", base, q.Encode(), rel)
}
