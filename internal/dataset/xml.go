package dataset

import (
	"encoding/xml"
	"strconv"
)

// xmlDataset matches the attribute-style XML export of the admin dashboards:
//
//	<Dataset Name="roles" Kind="segment">
//	  <Entry Label="student" Value="120" Color="#4477AA"/>
//	</Dataset>
type xmlDataset struct {
	Name    string     `xml:"Name,attr"`
	Title   string     `xml:"Title,attr"`
	Kind    string     `xml:"Kind,attr"`
	Max     string     `xml:"Max,attr"`
	Entries []xmlEntry `xml:"Entry"`
}

type xmlEntry struct {
	Label string `xml:"Label,attr"`
	Value string `xml:"Value,attr"`
	Color string `xml:"Color,attr"`
}

func unmarshalXML(raw []byte, ds *Dataset) error {
	var doc xmlDataset
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return err
	}

	ds.Name = doc.Name
	ds.Title = doc.Title
	ds.Kind = Kind(doc.Kind)
	if doc.Max != "" {
		m, err := strconv.ParseFloat(doc.Max, 64)
		if err != nil {
			return err
		}
		ds.Max = m
	}

	ds.Entries = make([]Entry, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		v, err := strconv.ParseFloat(e.Value, 64)
		if err != nil {
			return err
		}
		ds.Entries = append(ds.Entries, Entry{Label: e.Label, Value: v, Color: e.Color})
	}
	return nil
}
