package main

// webUIHTML is the single-page web UI served at /. It talks to the JSON API
// and renders the comparison, the cross-province table, and the break-even
// sweep client-side.
const webUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>HSA Cost Comparison Calculator</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; background: #f4f6f8; color: #1f2933; }
  header { background: #1d3557; color: #fff; padding: 16px 24px; }
  header h1 { margin: 0; font-size: 20px; }
  header p { margin: 4px 0 0; font-size: 13px; color: #cbd5e1; }
  main { max-width: 960px; margin: 24px auto; padding: 0 16px; }
  .card { background: #fff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,.12); padding: 20px; margin-bottom: 20px; }
  .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(170px, 1fr)); gap: 14px; }
  label { display: block; font-size: 12px; font-weight: 600; margin-bottom: 4px; color: #52606d; }
  input, select { width: 100%; box-sizing: border-box; padding: 8px; border: 1px solid #cbd2d9; border-radius: 4px; font-size: 14px; }
  button { background: #1d3557; color: #fff; border: 0; border-radius: 4px; padding: 10px 20px; font-size: 14px; cursor: pointer; margin-top: 14px; }
  button.secondary { background: #52606d; margin-left: 8px; }
  button:hover { opacity: .92; }
  table { width: 100%; border-collapse: collapse; font-size: 13px; }
  th, td { text-align: right; padding: 6px 10px; border-bottom: 1px solid #e4e7eb; }
  th:first-child, td:first-child { text-align: left; }
  .verdict { font-size: 18px; font-weight: 700; padding: 14px; border-radius: 6px; margin-bottom: 14px; }
  .verdict.saves { background: #e3f9e5; color: #207227; }
  .verdict.costs { background: #ffe3e3; color: #a61b1b; }
  .error { background: #ffe3e3; color: #a61b1b; padding: 10px 14px; border-radius: 6px; margin-bottom: 14px; display: none; }
  .muted { color: #7b8794; font-size: 12px; }
  #results { display: none; }
</style>
</head>
<body>
<header>
  <h1>HSA Cost Comparison Calculator</h1>
  <p>Health Spending Account vs after-tax personal payment &mdash; 2025 federal and provincial rates</p>
</header>
<main>
  <div class="card">
    <div class="grid">
      <div><label for="income">Annual income</label><input id="income" type="number" value="100000" min="1" step="1000"></div>
      <div><label for="expense">Annual medical expenses</label><input id="expense" type="number" value="3000" min="0" step="100"></div>
      <div><label for="province">Province / territory</label><select id="province"></select></div>
      <div><label for="feeRate">Admin fee (%)</label><input id="feeRate" type="number" value="8" min="0" step="0.5"></div>
      <div><label for="fixedFee">Flat annual fee ($)</label><input id="fixedFee" type="number" value="120" min="0" step="10"></div>
    </div>
    <button id="run">Compare</button>
    <button id="pdf" class="secondary">Export PDF</button>
  </div>

  <div id="err" class="error"></div>

  <div id="results">
    <div class="card">
      <div id="verdict" class="verdict"></div>
      <table>
        <tr><td>Federal marginal rate</td><td id="fedRate"></td></tr>
        <tr><td>Provincial marginal rate</td><td id="provRate"></td></tr>
        <tr><td>Combined marginal rate</td><td id="combRate"></td></tr>
        <tr><td>Cost through HSA (expense + fees)</td><td id="hsaCost"></td></tr>
        <tr><td>Pre-tax income needed to pay personally</td><td id="pretax"></td></tr>
        <tr><td>Break-even expense level</td><td id="breakEven"></td></tr>
      </table>
      <p class="muted">Break-even is the expense level where the tax shield exactly covers the flat annual fee.</p>
    </div>

    <div class="card">
      <h3>Savings by expense level</h3>
      <table id="sweepTable"><thead><tr><th>Expenses</th><th>HSA cost</th><th>Personal cost</th><th>Savings</th></tr></thead><tbody></tbody></table>
    </div>

    <div class="card">
      <h3>Same scenario across provinces</h3>
      <table id="provTable"><thead><tr><th>Jurisdiction</th><th>Prov. marginal</th><th>Combined</th><th>Savings</th><th>Break-even</th></tr></thead><tbody></tbody></table>
    </div>
  </div>
</main>
<script>
const $ = id => document.getElementById(id);
const money = v => !isFinite(v) ? "∞" : (v < 0 ? "-$" : "$") + Math.abs(v).toLocaleString(undefined, {minimumFractionDigits: 2, maximumFractionDigits: 2});
const pct = v => (v * 100).toFixed(2) + "%";

function request() {
  return {
    income: parseFloat($("income").value) || 0,
    expense: parseFloat($("expense").value) || 0,
    jurisdiction: $("province").value,
    fee_rate: (parseFloat($("feeRate").value) || 0) / 100,
    fixed_fee: parseFloat($("fixedFee").value) || 0
  };
}

async function loadJurisdictions() {
  const res = await fetch("/api/jurisdictions");
  const list = await res.json();
  const select = $("province");
  for (const j of list) {
    const opt = document.createElement("option");
    opt.value = j.code;
    opt.textContent = j.name + " (" + j.code + ")";
    if (j.code === "ON") opt.selected = true;
    select.appendChild(opt);
  }
}

async function run() {
  $("err").style.display = "none";
  const res = await fetch("/api/compare", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify(request())
  });
  const data = await res.json();
  if (!data.success) {
    $("err").textContent = data.error;
    $("err").style.display = "block";
    $("results").style.display = "none";
    return;
  }
  const r = data.result;
  const verdict = $("verdict");
  if (r.savings >= 0) {
    verdict.className = "verdict saves";
    verdict.textContent = "The HSA saves you " + money(r.savings) + " per year";
  } else {
    verdict.className = "verdict costs";
    verdict.textContent = "The HSA costs you " + money(-r.savings) + " per year more";
  }
  $("fedRate").textContent = pct(r.federal_marginal_rate);
  $("provRate").textContent = pct(r.provincial_marginal_rate);
  $("combRate").textContent = pct(r.combined_marginal_rate);
  $("hsaCost").textContent = money(r.total_cost_through_hsa);
  $("pretax").textContent = money(r.required_pretax_income);
  $("breakEven").textContent = money(r.break_even_expense);

  const sweepBody = $("sweepTable").querySelector("tbody");
  sweepBody.innerHTML = "";
  for (const p of data.sweep) {
    const tr = document.createElement("tr");
    tr.innerHTML = "<td>" + money(p.expense) + "</td><td>" + money(p.total_cost_through_hsa) +
      "</td><td>" + money(p.required_pretax_income) + "</td><td>" + money(p.savings) + "</td>";
    sweepBody.appendChild(tr);
  }

  const provBody = $("provTable").querySelector("tbody");
  provBody.innerHTML = "";
  for (const p of data.provinces) {
    const tr = document.createElement("tr");
    tr.innerHTML = "<td>" + p.name + " (" + p.code + ")</td><td>" + pct(p.result.provincial_marginal_rate) +
      "</td><td>" + pct(p.result.combined_marginal_rate) + "</td><td>" + money(p.result.savings) +
      "</td><td>" + money(p.result.break_even_expense) + "</td>";
    provBody.appendChild(tr);
  }

  $("results").style.display = "block";
}

async function exportPDF() {
  const res = await fetch("/api/export-pdf", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify(request())
  });
  if (!res.ok) return;
  const blob = await res.blob();
  const a = document.createElement("a");
  a.href = URL.createObjectURL(blob);
  a.download = "hsa-comparison.pdf";
  a.click();
  URL.revokeObjectURL(a.href);
}

$("run").addEventListener("click", run);
$("pdf").addEventListener("click", exportPDF);
loadJurisdictions().then(run);
</script>
</body>
</html>`
