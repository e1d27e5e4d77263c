package remote

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// timeLayouts lists the timestamp formats the CRM is known to emit
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02",
}

// Fields holds every member of a remote payload, custom fields included
type Fields map[string]Value

// Get returns the named member, null when absent
func (f Fields) Get(key string) Value {
	if f == nil {
		return Value{}
	}
	return f[key]
}

// Organization is the remote organization payload
type Organization struct {
	ID      int64
	Name    string
	Address string
	Fields  Fields
}

// UnmarshalJSON implements custom unmarshaling for Organization
func (o *Organization) UnmarshalJSON(data []byte) error {
	fields, err := decodeFields(data, "organization")
	if err != nil {
		return err
	}
	o.ID, _ = ResolveID(fields.Get("id"))
	o.Name, _ = ResolveString(fields.Get("name"))
	o.Address, _ = ResolveString(fields.Get("address"))
	o.Fields = fields
	return nil
}

// Person is the remote person payload.
// Email and Phone keep their raw shape since they may be multi-valued.
type Person struct {
	ID        int64
	Name      string
	FirstName string
	LastName  string
	OrgID     int64
	Email     Value
	Phone     Value
	Fields    Fields
}

// UnmarshalJSON implements custom unmarshaling for Person
func (p *Person) UnmarshalJSON(data []byte) error {
	fields, err := decodeFields(data, "person")
	if err != nil {
		return err
	}
	p.ID, _ = ResolveID(fields.Get("id"))
	p.Name, _ = ResolveString(fields.Get("name"))
	p.FirstName, _ = ResolveString(fields.Get("first_name"))
	p.LastName, _ = ResolveString(fields.Get("last_name"))
	p.OrgID, _ = ResolveID(fields.Get("org_id"))
	p.Email = fields.Get("email")
	p.Phone = fields.Get("phone")
	p.Fields = fields
	return nil
}

// Deal is the remote deal payload
type Deal struct {
	ID         int64
	Title      string
	OrgID      int64
	PersonID   int64
	PipelineID int64
	StageID    int64
	Status     string
	Fields     Fields
}

// UnmarshalJSON implements custom unmarshaling for Deal
func (d *Deal) UnmarshalJSON(data []byte) error {
	fields, err := decodeFields(data, "deal")
	if err != nil {
		return err
	}
	d.ID, _ = ResolveID(fields.Get("id"))
	d.Title, _ = ResolveString(fields.Get("title"))
	d.OrgID, _ = ResolveID(fields.Get("org_id"))
	d.PersonID, _ = ResolveID(fields.Get("person_id"))
	d.PipelineID, _ = ResolveID(fields.Get("pipeline_id"))
	d.StageID, _ = ResolveID(fields.Get("stage_id"))
	d.Status, _ = ResolveString(fields.Get("status"))
	d.Fields = fields
	return nil
}

// Product is one line item attached to a deal.
// Quantity keeps its raw shape; it is resolved during classification.
type Product struct {
	ID        int64
	ProductID int64
	Code      string
	Name      string
	Quantity  Value
}

// UnmarshalJSON implements custom unmarshaling for Product
func (p *Product) UnmarshalJSON(data []byte) error {
	fields, err := decodeFields(data, "product")
	if err != nil {
		return err
	}
	p.ID, _ = ResolveID(fields.Get("id"))
	p.ProductID, _ = ResolveID(fields.Get("product_id"))
	p.Name, _ = ResolveString(fields.Get("name"))
	p.Quantity = fields.Get("quantity")

	// The code lives on the line item or on the embedded catalog product
	p.Code, _ = ResolveString(fields.Get("code"))
	if p.Code == "" {
		if nested, ok := fields.Get("product").Field("code"); ok {
			p.Code, _ = ResolveString(nested)
		}
	}
	return nil
}

// Note is a free-text note attached to a deal
type Note struct {
	ID         int64
	Content    string
	AddTime    *time.Time
	UpdateTime *time.Time
}

// UnmarshalJSON implements custom unmarshaling for Note
func (n *Note) UnmarshalJSON(data []byte) error {
	fields, err := decodeFields(data, "note")
	if err != nil {
		return err
	}
	n.ID, _ = ResolveID(fields.Get("id"))
	if content := fields.Get("content"); content.Kind() == KindString {
		n.Content = content.s
	}
	n.AddTime = parseTime(fields.Get("add_time"))
	n.UpdateTime = parseTime(fields.Get("update_time"))
	return nil
}

// File is a document attached to a deal
type File struct {
	ID         int64
	Name       string
	FileName   string
	URL        string
	AddTime    *time.Time
	UpdateTime *time.Time
}

// UnmarshalJSON implements custom unmarshaling for File
func (f *File) UnmarshalJSON(data []byte) error {
	fields, err := decodeFields(data, "file")
	if err != nil {
		return err
	}
	f.ID, _ = ResolveID(fields.Get("id"))
	f.Name, _ = ResolveString(fields.Get("name"))
	f.FileName, _ = ResolveString(fields.Get("file_name"))
	f.URL, _ = ResolveString(fields.Get("url"))
	f.AddTime = parseTime(fields.Get("add_time"))
	f.UpdateTime = parseTime(fields.Get("update_time"))
	return nil
}

// DisplayName returns the name shown to users, falling back to the file name
func (f File) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.FileName
}

func decodeFields(data []byte, entity string) (Fields, error) {
	var fields map[string]Value
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", entity, err)
	}
	return Fields(fields), nil
}

func parseTime(v Value) *time.Time {
	if v.Kind() != KindString {
		return nil
	}
	s := strings.TrimSpace(v.s)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return &t
		}
	}
	return nil
}
