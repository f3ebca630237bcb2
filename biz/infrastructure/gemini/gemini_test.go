package gemini

import "testing"

func TestRetrievalTool(t *testing.T) {
	datastore := "projects/p/locations/global/collections/default_collection/dataStores/answers"

	tool := retrievalTool(datastore)
	if tool.Retrieval == nil || tool.Retrieval.VertexAISearch == nil {
		t.Fatal("datastore config should bind a Vertex AI Search retrieval tool")
	}
	if tool.Retrieval.VertexAISearch.Datastore != datastore {
		t.Errorf("datastore = %q", tool.Retrieval.VertexAISearch.Datastore)
	}
	if tool.GoogleSearchRetrieval != nil {
		t.Error("only one retrieval source may be attached")
	}

	tool = retrievalTool("")
	if tool.GoogleSearchRetrieval == nil {
		t.Fatal("without a datastore the tool should fall back to Google search")
	}
	if tool.Retrieval != nil {
		t.Error("only one retrieval source may be attached")
	}
}
