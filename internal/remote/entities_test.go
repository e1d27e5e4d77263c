package remote

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeal_UnmarshalReferenceShapes(t *testing.T) {
	payload := `{
		"id": 1001,
		"title": "Brigada de emergencias",
		"org_id": {"value": 55, "name": "Acme"},
		"person_id": 77,
		"pipeline_id": 3,
		"stage_id": 12,
		"status": "",
		"abc123": "Alcobendas"
	}`

	var deal Deal
	require.NoError(t, json.Unmarshal([]byte(payload), &deal))

	assert.Equal(t, int64(1001), deal.ID)
	assert.Equal(t, "Brigada de emergencias", deal.Title)
	assert.Equal(t, int64(55), deal.OrgID)
	assert.Equal(t, int64(77), deal.PersonID)
	assert.Equal(t, int64(3), deal.PipelineID)
	assert.Equal(t, int64(12), deal.StageID)
	assert.Empty(t, deal.Status)

	site, ok := ResolveString(deal.Fields.Get("abc123"))
	assert.True(t, ok)
	assert.Equal(t, "Alcobendas", site)
}

func TestDeal_UnmarshalWithoutLinks(t *testing.T) {
	var deal Deal
	require.NoError(t, json.Unmarshal([]byte(`{"id": 5, "org_id": null, "person_id": null}`), &deal))

	assert.Zero(t, deal.OrgID)
	assert.Zero(t, deal.PersonID)
}

func TestPerson_KeepsRawContactShapes(t *testing.T) {
	payload := `{
		"id": 77,
		"first_name": "Ana",
		"last_name": "García",
		"org_id": {"value": 55},
		"email": [{"value": "ana@acme.es", "primary": true}],
		"phone": "600111222"
	}`

	var person Person
	require.NoError(t, json.Unmarshal([]byte(payload), &person))

	assert.Equal(t, int64(55), person.OrgID)
	assert.Equal(t, KindArray, person.Email.Kind())
	assert.Equal(t, KindString, person.Phone.Kind())
}

func TestProduct_CodeFromNestedProduct(t *testing.T) {
	var product Product
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "name": "Extintores", "quantity": "2", "product": {"code": "FORM-EXT"}}`), &product))

	assert.Equal(t, "FORM-EXT", product.Code)
	assert.Equal(t, "Extintores", product.Name)
	assert.Equal(t, KindString, product.Quantity.Kind())
}

func TestNote_ParsesTimestamps(t *testing.T) {
	var note Note
	require.NoError(t, json.Unmarshal([]byte(`{"id": 9, "content": "<p>hola</p>", "add_time": "2024-03-01 10:30:00", "update_time": ""}`), &note))

	require.NotNil(t, note.AddTime)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), *note.AddTime)
	assert.Nil(t, note.UpdateTime)
	assert.Equal(t, "<p>hola</p>", note.Content)
}

func TestFile_DisplayNameFallback(t *testing.T) {
	var file File
	require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "file_name": "presupuesto.pdf"}`), &file))

	assert.Equal(t, "presupuesto.pdf", file.DisplayName())
}

func TestOrganization_RejectsNonObject(t *testing.T) {
	var org Organization
	err := json.Unmarshal([]byte(`[1,2]`), &org)
	assert.Error(t, err)
}

func TestValue_RoundTrip(t *testing.T) {
	v := mustParse(t, `{"a":[1,"x",true,null]}`)
	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":[1,"x",true,null]}`, string(out))
	assert.Equal(t, []string{"a"}, v.Keys())
}
