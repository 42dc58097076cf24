package swagger

import (
	"encoding/json"

	"github.com/swaggo/swag"
)

type property struct {
	Type   string `json:"type"`
	Format string `json:"format,omitempty"`
}

type resource struct {
	tag        string
	path       string
	definition string
	properties map[string]property
	filters    []string
}

var (
	text     = property{Type: "string"}
	integer  = property{Type: "integer"}
	int64ID  = property{Type: "integer", Format: "int64"}
	dateTime = property{Type: "string", Format: "date-time"}
)

var resources = []resource{
	{tag: "Schools", path: "schools", definition: "SchoolDTO", properties: map[string]property{
		"id": int64ID, "schoolName": text, "address": text, "phone": text,
	}},
	{tag: "Teachers", path: "teachers", definition: "TeacherDTO", properties: map[string]property{
		"id": int64ID, "teacherName": text, "email": text, "phone": text, "schoolId": int64ID,
	}, filters: []string{"schoolId"}},
	{tag: "Rooms", path: "rooms", definition: "RoomDTO", properties: map[string]property{
		"id": int64ID, "roomName": text, "capacity": integer, "schoolId": int64ID,
	}, filters: []string{"schoolId"}},
	{tag: "Semesters", path: "semesters", definition: "SemesterDTO", properties: map[string]property{
		"id": int64ID, "semesterName": text, "startDate": dateTime, "endDate": dateTime, "totalWeek": integer,
	}},
	{tag: "Classes", path: "class-schools", definition: "ClassSchoolDTO", properties: map[string]property{
		"id": int64ID, "className": text, "description": text,
	}},
	{tag: "Lessons", path: "lessons", definition: "LessonDTO", properties: map[string]property{
		"id": int64ID, "lessonName": text, "description": text, "dayOfWeek": integer, "startPeriod": integer,
		"endPeriod": integer, "semesterId": int64ID, "classSchoolId": int64ID, "teacherId": int64ID, "roomId": int64ID,
	}, filters: []string{"semesterId", "classSchoolId", "teacherId", "roomId"}},
}

type object = map[string]interface{}

func ref(name string) object { return object{"$ref": "#/definitions/" + name} }

func reply(description string, schema object) object {
	r := object{"description": description}
	if schema != nil {
		r["schema"] = schema
	}
	return r
}

func queryParam(name, typ, description string) object {
	return object{"name": name, "in": "query", "type": typ, "description": description}
}

func (r resource) paths() (string, object, string, object, string, object) {
	body := []object{{"name": "payload", "in": "body", "required": true, "schema": ref(r.definition)}}
	idParam := []object{{"name": "id", "in": "path", "required": true, "type": "integer", "format": "int64"}}

	listParams := []object{
		queryParam("page", "integer", "Zero based page index"),
		queryParam("size", "integer", "Page size"),
		queryParam("sort", "string", "property[,asc|desc], repeatable"),
	}
	for _, f := range r.filters {
		listParams = append(listParams, queryParam(f, "integer", "Filter by reference id"))
	}
	exportParams := append([]object{queryParam("format", "string", "csv, pdf or xlsx")}, listParams[2:]...)

	collection := object{
		"get": object{
			"tags": []string{r.tag}, "summary": "List " + r.path, "parameters": listParams,
			"responses": object{"200": reply("OK, with X-Total-Count and Link headers", ref("ResponseEnvelope"))},
		},
		"post": object{
			"tags": []string{r.tag}, "summary": "Create " + r.definition, "parameters": body,
			"responses": object{
				"201": reply("Created", ref("ResponseEnvelope")),
				"400": reply("Identifier present or invalid payload", ref("ResponseEnvelope")),
			},
		},
		"put": object{
			"tags": []string{r.tag}, "summary": "Update " + r.definition, "parameters": body,
			"responses": object{
				"200": reply("Updated", ref("ResponseEnvelope")),
				"201": reply("Created when the payload has no id", ref("ResponseEnvelope")),
				"404": reply("Not found", ref("ResponseEnvelope")),
			},
		},
	}
	item := object{
		"get": object{
			"tags": []string{r.tag}, "summary": "Get " + r.definition, "parameters": idParam,
			"responses": object{"200": reply("OK", ref("ResponseEnvelope")), "404": reply("Not found", nil)},
		},
		"delete": object{
			"tags": []string{r.tag}, "summary": "Delete " + r.definition, "parameters": idParam,
			"responses": object{"200": reply("Deleted", nil)},
		},
	}
	exp := object{
		"get": object{
			"tags": []string{r.tag}, "summary": "Export " + r.path, "parameters": exportParams,
			"produces":  []string{"text/csv", "application/pdf", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
			"responses": object{"200": reply("Attachment", nil), "400": reply("Unsupported format", ref("ResponseEnvelope"))},
		},
	}
	base := "/api/" + r.path
	return base, collection, base + "/{id}", item, base + "/export", exp
}

func buildDoc() string {
	paths := object{
		"/health":  object{"get": object{"summary": "Health check", "responses": object{"200": reply("OK", nil)}}},
		"/ready":   object{"get": object{"summary": "Readiness check", "responses": object{"200": reply("Ready", nil), "503": reply("Dependency down", nil)}}},
		"/metrics": object{"get": object{"summary": "Prometheus metrics", "responses": object{"200": reply("OK", nil)}}},
	}
	definitions := object{
		"Pagination": object{"type": "object", "properties": object{
			"page": integer, "page_size": integer, "total_count": integer, "total_pages": integer,
		}},
		"APIError": object{"type": "object", "properties": object{
			"code": text, "message": text, "status": integer, "entity": text,
		}},
		"ResponseEnvelope": object{"type": "object", "properties": object{
			"data":       object{"type": "object"},
			"error":      ref("APIError"),
			"pagination": ref("Pagination"),
			"meta":       object{"type": "object"},
		}},
	}
	var tags []object
	for _, r := range resources {
		p1, v1, p2, v2, p3, v3 := r.paths()
		paths[p1], paths[p2], paths[p3] = v1, v2, v3
		definitions[r.definition] = object{"type": "object", "properties": r.properties}
		tags = append(tags, object{"name": r.tag})
	}

	doc := object{
		"swagger": "2.0",
		"info": object{
			"title":       "School Admin API",
			"description": "CRUD backend for schools, teachers, rooms, semesters, classes and lessons",
			"version":     "1.0.0",
		},
		"basePath":    "/",
		"schemes":     []string{"http"},
		"tags":        tags,
		"paths":       paths,
		"definitions": definitions,
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return string(raw)
}

type swaggerDoc struct {
	doc string
}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return s.doc
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{doc: buildDoc()})
}
