package listing

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// resultsPage mimics the list-view markup: two items, the second with free postage
const resultsPage = `
<html><body>
<div id="Results">
  <ul id="ListViewInner">
    <li class="sresult">
      <div class="pic"><a href="/itm/1"><img src="https://i.ebayimg.com/1.jpg"></a></div>
      <h3 class="lvtitle"><a href="https://www.ebay.co.uk/itm/1"> ZVEX Instant Lo-Fi Junky </a></h3>
      <ul class="lvprice prc"><li class="lvprice prc"><span class="bold">Â£95.00</span></li></ul>
      <ul><li class="lvshipping"><span class="ship">+£Â 4.50 postage</span></li></ul>
    </li>
    <li class="sresult">
      <div class="pic"><a href="/itm/2"><img src="https://i.ebayimg.com/2.jpg"></a></div>
      <h3 class="lvtitle"><a href="https://www.ebay.co.uk/itm/2">ZVEX Instant Lo-Fi Junky (boxed)</a></h3>
      <ul><li class="lvprice prc"><span class="bold">£89.99</span></li></ul>
      <ul><li class="lvshipping"><span class="ship">Free postage</span></li></ul>
    </li>
  </ul>
</div>
<div id="Sidebar">
  <h3 class="lvtitle"><a href="/ad">Sponsored</a></h3>
</div>
</body></html>
`

// misalignedPage has three titles but only two prices
const misalignedPage = `
<div id="Results"><ul id="ListViewInner">
  <li class="sresult">
    <h3 class="lvtitle"><a href="/a">A</a></h3>
    <ul><li class="lvprice"><span class="bold">£10.00</span></li></ul>
    <ul><li class="lvshipping"><span class="ship">Free</span></li></ul>
    <div class="pic"><a><img src="i1"></a></div>
  </li>
  <li class="sresult">
    <h3 class="lvtitle"><a href="/b">B</a></h3>
    <h3 class="lvtitle"><a href="/c">C</a></h3>
    <ul><li class="lvprice"><span class="bold">£5.00</span></li></ul>
    <ul><li class="lvshipping"><span class="ship">£ 2.00</span></li></ul>
    <div class="pic"><a><img src="i2"></a></div>
  </li>
</ul></div>
`

func newDocument(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

// parallelSelectors reads the page without item scoping
func parallelSelectors() Selectors {
	sel := DefaultSelectors
	sel.Item = ""
	return sel
}
